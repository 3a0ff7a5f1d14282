// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	deliverycontext "creativehub/internal/delivery/context"
	domainerrors "creativehub/internal/domain/errors"
	"creativehub/internal/domain/repository"
	"creativehub/internal/domain/service"
	"creativehub/internal/util"

	"github.com/pkg/errors"
)

// maxSlugAttempts bounds the numeric suffixes tried for a generated slug.
const maxSlugAttempts = 50

// events publishes resource change notifications. Publishing is best effort:
// the write has already succeeded when it runs.
type events struct {
	publisher service.EventPublisher
	logger    *slog.Logger
}

func (e events) emit(ctx context.Context, resource, action, id string) {
	if e.publisher == nil {
		return
	}

	event := &service.ResourceEvent{
		RequestID:  deliverycontext.RequestIDFrom(ctx),
		Resource:   resource,
		Action:     action,
		ResourceID: id,
		OccurredAt: time.Now().UTC(),
	}
	if err := e.publisher.PublishResourceEvent(ctx, event); err != nil {
		deliverycontext.LoggerFrom(ctx, e.logger).Warn("Failed to publish resource event",
			slog.String("resource", resource),
			slog.String("action", action),
			slog.String("resource_id", id),
			slog.Any("error", err),
		)
	}
}

// repoError converts repository sentinels into application errors.
func repoError(err error, notFound *domainerrors.BaseError, op string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return notFound
	case errors.Is(err, repository.ErrDuplicateKey):
		return domainerrors.ErrConflict.WithDetails(op)
	default:
		return domainerrors.NewDatabaseExecuteError(err, op)
	}
}

// slugLookup reports the id of the document holding slug, or repository.ErrNotFound.
type slugLookup func(ctx context.Context, slug string) (string, error)

// resolveSlug returns the slug to store. An explicit slug must be free (or already owned by selfID).
// A slug derived from the title gets a numeric suffix until it is free.
func resolveSlug(ctx context.Context, explicit, title, selfID string, lookup slugLookup) (string, error) {
	if explicit = util.Slugify(explicit); explicit != "" {
		free, err := slugFree(ctx, explicit, selfID, lookup)
		if err != nil {
			return "", err
		}
		if !free {
			return "", domainerrors.ErrSlugConflict.WithDetails(explicit)
		}

		return explicit, nil
	}

	base := util.Slugify(title)
	if base == "" {
		return "", domainerrors.ErrValidationFailed.WithDetails("a title or slug is required")
	}

	candidate := base
	for i := 2; i <= maxSlugAttempts; i++ {
		free, err := slugFree(ctx, candidate, selfID, lookup)
		if err != nil {
			return "", err
		}
		if free {
			return candidate, nil
		}
		candidate = base + "-" + strconv.Itoa(i)
	}

	return "", domainerrors.ErrSlugConflict.WithDetails(base)
}

func slugFree(ctx context.Context, slug, selfID string, lookup slugLookup) (bool, error) {
	ownerID, err := lookup(ctx, slug)
	if errors.Is(err, repository.ErrNotFound) {
		return true, nil
	}
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "slug lookup")
	}

	return selfID != "" && ownerID == selfID, nil
}

// validateSalePrice enforces 0 <= salePrice < price when a sale price is set.
func validateSalePrice(price float64, sale *float64) error {
	if price < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("price must not be negative")
	}
	if sale == nil {
		return nil
	}
	if *sale < 0 || *sale >= price {
		return domainerrors.ErrInvalidSalePrice
	}

	return nil
}

func requireTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("title is required")
	}

	return nil
}

func setIfPresent[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			out = append(out, tag)
		}
	}

	return out
}
