// Package handler contains the Pub/Sub push handler of the activity worker.
package handler

import (
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"creativehub/config"
	deliverycontext "creativehub/internal/delivery/context"
	"creativehub/internal/domain/constants"
	domainerrors "creativehub/internal/domain/errors"
	"creativehub/internal/domain/service"
	"creativehub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage is the body of a Pub/Sub push delivery.
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// TokenVerifier checks the OIDC token Pub/Sub attaches to push requests.
type TokenVerifier func(req *http.Request, audience string) error

// PushHandler records pushed resource events in the activity feed.
type PushHandler struct {
	verifyPushAuth bool
	audience       string
	verify         TokenVerifier
	logger         *slog.Logger
	activityUC     usecase.ActivityUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	ActivityUC usecase.ActivityUsecase
}

func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		verifyPushAuth: signedPushes(params.Config),
		verify:         verifyPubSubToken,
		logger:         params.Logger,
		activityUC:     params.ActivityUC,
	}
	if params.Config.Worker != nil {
		h.audience = params.Config.Worker.PushAudience
	}

	return h
}

// signedPushes reports whether deliveries carry a Google-signed token, which is
// only the case for real Pub/Sub outside local and develop.
func signedPushes(cfg *config.Config) bool {
	if cfg.PubSub == nil || cfg.PubSub.Provider != constants.PubSubProviderGoogle {
		return false
	}

	return cfg.Env.Env != constants.EnvLocal && cfg.Env.Env != constants.EnvDevelop
}

// HandlePush acknowledges malformed messages with 400 so they are not redelivered,
// and answers 503 on storage failures so Pub/Sub retries.
func (h *PushHandler) HandlePush(c echo.Context) error {
	if h.verifyPushAuth {
		if err := h.verify(c.Request(), h.audience); err != nil {
			h.logger.Warn("Rejected push delivery", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var msg PubSubMessage
	if err := c.Bind(&msg); err != nil {
		h.logger.Error("Unreadable push body", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}
	event, err := decodeEvent(msg.Message.Data)
	if err != nil {
		h.logger.Error("Unreadable resource event",
			slog.String("message_id", msg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	ctx := c.Request().Context()
	event.RequestID = firstNonEmpty(
		msg.Message.Attributes[constants.AttrRequestID],
		event.RequestID,
		deliverycontext.RequestIDFrom(ctx),
	)
	logger := h.logger.With(
		slog.String("request_id", event.RequestID),
		slog.String("message_id", msg.Message.MessageID),
	)
	ctx = deliverycontext.WithLogger(deliverycontext.WithRequestID(ctx, event.RequestID), logger)

	if err := h.activityUC.Record(ctx, msg.Message.MessageID, event); err != nil {
		status := failureStatus(err)
		logger.Error("Activity not recorded", slog.Any("error", err), slog.Int("status", status))

		return c.NoContent(status)
	}

	logger.Info("Activity recorded",
		slog.String("resource", event.Resource),
		slog.String("action", event.Action),
		slog.String("resource_id", event.ResourceID),
	)

	return c.NoContent(http.StatusOK)
}

func decodeEvent(data string) (*service.ResourceEvent, error) {
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, errors.Wrap(err, "decode message data")
	}

	var event service.ResourceEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		return nil, errors.Wrap(err, "parse resource event")
	}

	return &event, nil
}

// failureStatus is 400 for rejected input and 503 for anything Pub/Sub should retry.
func failureStatus(err error) int {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
		return http.StatusBadRequest
	}

	return http.StatusServiceUnavailable
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}

func verifyPubSubToken(req *http.Request, audience string) error {
	token, ok := strings.CutPrefix(req.Header.Get(echo.HeaderAuthorization), "Bearer ")
	if !ok || token == "" {
		return errors.New("missing bearer token")
	}

	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = scheme + "://" + req.Host + req.URL.Path
	}

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "validate push token")
	}

	switch payload.Issuer {
	case "accounts.google.com", "https://accounts.google.com":
	default:
		return errors.Errorf("untrusted issuer %q", payload.Issuer)
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return errors.New("push service account email not verified")
	}

	return nil
}
