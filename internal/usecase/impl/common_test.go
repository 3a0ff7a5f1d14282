package impl

import (
	"context"
	"testing"

	domainerrors "creativehub/internal/domain/errors"
	"creativehub/internal/domain/repository"
	"creativehub/internal/domain/service"
	mockService "creativehub/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func lookupFrom(taken map[string]string) slugLookup {
	return func(_ context.Context, slug string) (string, error) {
		if id, ok := taken[slug]; ok {
			return id, nil
		}

		return "", repository.ErrNotFound
	}
}

func TestResolveSlug(t *testing.T) {
	ctx := context.Background()
	taken := map[string]string{
		"neon-icons":   "p1",
		"neon-icons-2": "p2",
		"retro-font":   "p3",
	}

	tests := []struct {
		name     string
		explicit string
		title    string
		selfID   string
		want     string
		wantErr  error
	}{
		{"derived from title", "", "Pastel Kit", "", "pastel-kit", nil},
		{"derived gets suffix", "", "Neon Icons", "", "neon-icons-3", nil},
		{"explicit free", "My Slug", "ignored", "", "my-slug", nil},
		{"explicit taken", "retro-font", "x", "", "", domainerrors.ErrSlugConflict},
		{"explicit owned by self", "retro-font", "x", "p3", "retro-font", nil},
		{"nothing to derive from", "", "  ", "", "", domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveSlug(ctx, tt.explicit, tt.title, tt.selfID, lookupFrom(taken))
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveSlug_LookupFailure(t *testing.T) {
	lookup := func(context.Context, string) (string, error) { return "", errors.New("connection reset") }

	_, err := resolveSlug(context.Background(), "", "Title", "", lookup)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
}

func TestValidateSalePrice(t *testing.T) {
	tests := []struct {
		name    string
		price   float64
		sale    *float64
		wantErr bool
	}{
		{"no sale", 10, nil, false},
		{"lower sale", 10, ptr(7.5), false},
		{"equal sale", 10, ptr(10.0), true},
		{"higher sale", 10, ptr(12.0), true},
		{"negative sale", 10, ptr(-1.0), true},
		{"negative price", -1, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateSalePrice(tt.price, tt.sale)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepoError(t *testing.T) {
	assert.NoError(t, repoError(nil, domainerrors.ErrProductNotFound, "op"))
	assert.Equal(t, domainerrors.ErrProductNotFound, repoError(errors.Wrap(repository.ErrNotFound, "x"), domainerrors.ErrProductNotFound, "op"))
	assert.True(t, errors.Is(repoError(repository.ErrDuplicateKey, domainerrors.ErrProductNotFound, "op"), domainerrors.ErrConflict))

	var appErr domainerrors.AppError
	require.True(t, errors.As(repoError(errors.New("boom"), domainerrors.ErrProductNotFound, "op"), &appErr))
	assert.Equal(t, 500, appErr.HTTPCode())
}

func TestEvents_PublishFailureIsSwallowed(t *testing.T) {
	pub := mockService.NewMockEventPublisher(t)
	pub.On("PublishResourceEvent", mock.Anything, mock.MatchedBy(func(e *service.ResourceEvent) bool {
		return e.Resource == "fonts" && e.Action == service.ActionDeleted && e.ResourceID == "f1"
	})).Return(errors.New("topic unavailable")).Once()

	e := events{publisher: pub, logger: newDiscardLogger()}
	e.emit(context.Background(), "fonts", service.ActionDeleted, "f1")
}
