package impl

import (
	"context"
	"log/slog"
	"slices"

	deliverycontext "creativehub/internal/delivery/context"
	"creativehub/internal/domain/entity"
	domainerrors "creativehub/internal/domain/errors"
	"creativehub/internal/domain/repository"
	"creativehub/internal/domain/service"
	"creativehub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const resourceSettings = "settings"

type settingsService struct {
	settingsRepo repository.SettingsRepository
	events       events
	logger       *slog.Logger
}

// SettingsServiceParams holds dependencies for SettingsService, injected by Fx.
type SettingsServiceParams struct {
	fx.In

	SettingsRepo repository.SettingsRepository
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewSettingsService is the constructor for settingsService.
func NewSettingsService(params SettingsServiceParams) usecase.SettingsUsecase {
	return &settingsService{
		settingsRepo: params.SettingsRepo,
		events:       events{publisher: params.Publisher, logger: params.Logger},
		logger:       params.Logger,
	}
}

func (srv *settingsService) GetFeatureFlags(ctx context.Context) (entity.FeatureFlags, error) {
	flags, err := srv.settingsRepo.GetFeatureFlags(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return entity.DefaultFeatureFlags(), nil
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "load feature flags")
	}

	return flags, nil
}

func (srv *settingsService) ReplaceFeatureFlags(ctx context.Context, flags entity.FeatureFlags) (entity.FeatureFlags, error) {
	if len(flags) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("feature map must not be empty")
	}

	known := entity.FeatureGroups()
	for group := range flags {
		if !slices.Contains(known, group) {
			return nil, domainerrors.ErrUnknownFeature.WithDetails("unknown group " + group)
		}
	}

	previous, err := srv.GetFeatureFlags(ctx)
	if err != nil {
		return nil, err
	}

	next := flags.Clone()
	if err := srv.settingsRepo.ReplaceFeatureFlags(ctx, next); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "save feature flags")
	}

	for _, change := range previous.Diff(next) {
		deliverycontext.LoggerFrom(ctx, srv.logger).Info("Feature flag changed",
			slog.String("group", change.Group),
			slog.String("key", change.Key),
			slog.Bool("enabled", change.To),
		)
	}
	srv.events.emit(ctx, resourceSettings, service.ActionUpdated, "modules")

	return next, nil
}
