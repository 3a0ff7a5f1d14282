package impl

import (
	"io"
	"log/slog"
	"testing"

	mockService "creativehub/internal/mocks/service"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newQuietPublisher accepts any number of events.
func newQuietPublisher(t *testing.T) *mockService.MockEventPublisher {
	pub := mockService.NewMockEventPublisher(t)
	pub.On("PublishResourceEvent", mock.Anything, mock.Anything).Return(nil).Maybe()

	return pub
}

func ptr[T any](v T) *T {
	return &v
}
