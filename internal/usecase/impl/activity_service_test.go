package impl

import (
	"context"
	"testing"
	"time"

	"creativehub/internal/domain/entity"
	domainerrors "creativehub/internal/domain/errors"
	"creativehub/internal/domain/repository"
	"creativehub/internal/domain/service"
	mockRepo "creativehub/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestActivityService_Record(t *testing.T) {
	ctx := context.Background()
	occurred := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	event := &service.ResourceEvent{
		RequestID:  "req-1",
		Resource:   "graphics",
		Action:     service.ActionCreated,
		ResourceID: "65f0c0ffee",
		OccurredAt: occurred,
	}

	tests := []struct {
		name      string
		messageID string
		event     *service.ResourceEvent
		repoErr   error
		callsRepo bool
		wantErr   error
	}{
		{name: "stores new delivery", messageID: "m-1", event: event, callsRepo: true},
		{name: "duplicate delivery is not an error", messageID: "m-1", event: event, repoErr: errors.Wrap(repository.ErrDuplicateKey, "insert"), callsRepo: true},
		{name: "missing message id", event: event, wantErr: domainerrors.ErrValidationFailed},
		{name: "missing action", messageID: "m-2", event: &service.ResourceEvent{Resource: "fonts"}, wantErr: domainerrors.ErrValidationFailed},
		{name: "nil event", messageID: "m-3", wantErr: domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mockRepo.NewMockActivityRepository(t)
			srv := NewActivityService(ActivityServiceParams{ActivityRepo: repo, Logger: newDiscardLogger()})

			if tt.callsRepo {
				repo.On("Record", ctx, mock.MatchedBy(func(a *entity.Activity) bool {
					return a.MessageID == tt.messageID &&
						a.Resource == "graphics" &&
						a.RequestID == "req-1" &&
						a.OccurredAt.Equal(occurred)
				})).Return(tt.repoErr).Once()
			}

			err := srv.Record(ctx, tt.messageID, tt.event)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)

				return
			}
			require.NoError(t, err)
		})
	}
}

func TestActivityService_Record_StoreFailure(t *testing.T) {
	ctx := context.Background()
	repo := mockRepo.NewMockActivityRepository(t)
	srv := NewActivityService(ActivityServiceParams{ActivityRepo: repo, Logger: newDiscardLogger()})

	repo.On("Record", ctx, mock.Anything).Return(errors.New("connection reset")).Once()

	err := srv.Record(ctx, "m-9", &service.ResourceEvent{Resource: "courses", Action: service.ActionDeleted})
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
}

func TestActivityService_List(t *testing.T) {
	ctx := context.Background()
	repo := mockRepo.NewMockActivityRepository(t)
	srv := NewActivityService(ActivityServiceParams{ActivityRepo: repo, Logger: newDiscardLogger()})

	filter := repository.ListFilter{Type: "courses", Limit: 20}
	want := []*entity.Activity{{ID: "a1", Resource: "courses"}}
	repo.On("ListRecent", ctx, filter).Return(want, nil).Once()

	got, err := srv.List(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
