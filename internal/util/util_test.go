package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"  Hello, World!  ", "hello-world"},
		{"Modern UI Kit -- 2024", "modern-ui-kit-2024"},
		{"Café Fonts", "caf-fonts"},
		{"---", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "jane@example.com", NormalizeEmail("  Jane@Example.COM "))
}

func TestDigitCount(t *testing.T) {
	assert.Equal(t, 13, DigitCount("+880 1712-345678"))
	assert.Equal(t, 0, DigitCount("n/a"))
}
