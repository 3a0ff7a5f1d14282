package main

import (
	"bytes"
	"flag"
	"testing"

	"creativehub/internal/console"
	"creativehub/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInterspersed(t *testing.T) {
	fs := flag.NewFlagSet("delete", flag.ContinueOnError)
	yes := fs.Bool("yes", false, "")
	var sets assignments
	fs.Var(&sets, "set", "")

	positional, err := parseInterspersed(fs, []string{"graphics", "-set", "title=Poster", "42", "-yes", "-set", "tags=a=b"})
	require.NoError(t, err)

	assert.Equal(t, []string{"graphics", "42"}, positional)
	assert.True(t, *yes)
	assert.Equal(t, [][2]string{{"title", "Poster"}, {"tags", "a=b"}}, sets.pairs())
}

func TestAssignments_RejectsMissingEquals(t *testing.T) {
	var sets assignments
	assert.Error(t, sets.Set("title"))
}

func TestRegistry(t *testing.T) {
	for _, pt := range entity.ProductTypes() {
		_, err := lookup(string(pt))
		assert.NoError(t, err, pt)
	}
	for _, name := range []string{"categories", "courses", "modules", "lessons", "webinars", "certificates", "users"} {
		_, err := lookup(name)
		assert.NoError(t, err, name)
	}

	_, err := lookup("orders")
	assert.ErrorContains(t, err, "unknown resource")
}

func TestFormatPrice(t *testing.T) {
	sale := 800.0

	assert.Equal(t, "500.00", formatPrice(500, nil))
	assert.Equal(t, "800.00 (was 1000.00, -20%)", formatPrice(1000, &sale))
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	writeTable(&buf, []string{"ID", "TITLE"}, []entity.Product{{ID: "1", Title: "Poster"}}, func(p entity.Product) []string {
		return []string{p.ID, p.Title}
	})

	assert.Equal(t, "ID  TITLE\n1   Poster\n", buf.String())
}

func TestReported(t *testing.T) {
	assert.Nil(t, reported(nil))
	assert.ErrorIs(t, reported(assert.AnError), errReported)
	assert.ErrorIs(t, reported(console.ErrDeclined), console.ErrDeclined)
}

func TestSettle_OnlyHidesErrorsTheOperatorSaw(t *testing.T) {
	rec := console.NewRecorder()
	a := &app{tally: &errorTally{Notifier: rec}}
	a.notifier = a.tally

	err := a.settle(console.ErrClosed)
	assert.NotErrorIs(t, err, errReported, "an error without a toast must reach main and be printed")

	a.notifier.Info("Cancelled")
	assert.NotErrorIs(t, a.settle(assert.AnError), errReported)

	a.notifier.Error("Failed to delete graphic")
	assert.ErrorIs(t, a.settle(assert.AnError), errReported)
	assert.Equal(t, "Failed to delete graphic", rec.Last().Message)

	assert.NoError(t, a.settle(nil))
	assert.ErrorIs(t, a.settle(console.ErrDeclined), console.ErrDeclined)
}
