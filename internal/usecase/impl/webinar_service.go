package impl

import (
	"context"
	"log/slog"
	"strings"

	"creativehub/internal/domain/entity"
	domainerrors "creativehub/internal/domain/errors"
	"creativehub/internal/domain/repository"
	"creativehub/internal/domain/service"
	"creativehub/internal/usecase"

	"go.uber.org/fx"
)

const resourceWebinars = "webinars"

type webinarService struct {
	webinarRepo repository.WebinarRepository
	events      events
}

// WebinarServiceParams holds dependencies for WebinarService, injected by Fx.
type WebinarServiceParams struct {
	fx.In

	WebinarRepo repository.WebinarRepository
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewWebinarService is the constructor for webinarService.
func NewWebinarService(params WebinarServiceParams) usecase.WebinarUsecase {
	return &webinarService{
		webinarRepo: params.WebinarRepo,
		events:      events{publisher: params.Publisher, logger: params.Logger},
	}
}

func (srv *webinarService) List(ctx context.Context, filter repository.ListFilter) ([]*entity.Webinar, error) {
	webinars, err := srv.webinarRepo.List(ctx, filter)
	if err != nil {
		return nil, repoError(err, domainerrors.ErrWebinarNotFound, "list webinars")
	}

	return webinars, nil
}

func (srv *webinarService) Get(ctx context.Context, id string) (*entity.Webinar, error) {
	webinar, err := srv.webinarRepo.FindByID(ctx, id)
	if err != nil {
		return nil, repoError(err, domainerrors.ErrWebinarNotFound, "find webinar")
	}

	return webinar, nil
}

func (srv *webinarService) Create(ctx context.Context, input *usecase.WebinarInput) (*entity.Webinar, error) {
	if err := requireTitle(input.Title); err != nil {
		return nil, err
	}
	if input.ScheduledAt.IsZero() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("scheduledAt is required")
	}

	status := entity.PublishStatus(input.Status)
	if status == "" {
		status = entity.StatusDraft
	}
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown status " + input.Status)
	}

	slug, err := resolveSlug(ctx, input.Slug, input.Title, "", srv.slugLookup)
	if err != nil {
		return nil, err
	}

	webinar := &entity.Webinar{
		Title:           strings.TrimSpace(input.Title),
		Slug:            slug,
		Description:     input.Description,
		Host:            input.Host,
		ScheduledAt:     input.ScheduledAt.UTC(),
		DurationMinutes: input.DurationMinutes,
		Price:           input.Price,
		Status:          status,
		MeetingURL:      input.MeetingURL,
		Thumbnail:       input.Thumbnail,
	}
	if err := srv.webinarRepo.Create(ctx, webinar); err != nil {
		return nil, repoError(err, domainerrors.ErrWebinarNotFound, "create webinar")
	}

	srv.events.emit(ctx, resourceWebinars, service.ActionCreated, webinar.ID)

	return webinar, nil
}

func (srv *webinarService) Update(ctx context.Context, id string, patch *usecase.WebinarPatch) (*entity.Webinar, error) {
	webinar, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	setIfPresent(&webinar.Title, patch.Title)
	setIfPresent(&webinar.Description, patch.Description)
	setIfPresent(&webinar.Host, patch.Host)
	setIfPresent(&webinar.ScheduledAt, patch.ScheduledAt)
	setIfPresent(&webinar.DurationMinutes, patch.DurationMinutes)
	setIfPresent(&webinar.Price, patch.Price)
	setIfPresent(&webinar.MeetingURL, patch.MeetingURL)
	setIfPresent(&webinar.Thumbnail, patch.Thumbnail)
	if patch.Status != nil {
		webinar.Status = entity.PublishStatus(*patch.Status)
		if !webinar.Status.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown status " + *patch.Status)
		}
	}
	if err := requireTitle(webinar.Title); err != nil {
		return nil, err
	}
	if patch.Slug != nil {
		slug, err := resolveSlug(ctx, *patch.Slug, webinar.Title, webinar.ID, srv.slugLookup)
		if err != nil {
			return nil, err
		}
		webinar.Slug = slug
	}

	if err := srv.webinarRepo.Update(ctx, webinar); err != nil {
		return nil, repoError(err, domainerrors.ErrWebinarNotFound, "update webinar")
	}

	srv.events.emit(ctx, resourceWebinars, service.ActionUpdated, webinar.ID)

	return webinar, nil
}

func (srv *webinarService) Delete(ctx context.Context, id string) error {
	if err := srv.webinarRepo.Delete(ctx, id); err != nil {
		return repoError(err, domainerrors.ErrWebinarNotFound, "delete webinar")
	}

	srv.events.emit(ctx, resourceWebinars, service.ActionDeleted, id)

	return nil
}

func (srv *webinarService) slugLookup(ctx context.Context, slug string) (string, error) {
	webinar, err := srv.webinarRepo.FindBySlug(ctx, slug)
	if err != nil {
		return "", err
	}

	return webinar.ID, nil
}
