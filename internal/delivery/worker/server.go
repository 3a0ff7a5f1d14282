// Package worker serves the Pub/Sub push endpoint that feeds the activity log.
package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"creativehub/config"
	"creativehub/internal/delivery"
	"creativehub/internal/delivery/middleware"
	"creativehub/internal/delivery/worker/handler"
	"creativehub/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

type pushServer struct {
	addr   string
	echo   *echo.Echo
	logger *slog.Logger
}

// NewServer builds the push receiver and registers its shutdown hook.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	if params.Cfg.Worker == nil {
		return nil, errors.New("worker configuration is missing")
	}

	e := echo.New()
	e.HideBanner, e.HidePort = true, true
	e.Use(
		echomiddleware.Recover(),
		middleware.RequestID(params.Logger),
		middleware.AccessLog(params.Logger, params.Cfg.Env.Debug),
	)
	routes(e, params.PushHandler)

	srv := &pushServer{
		addr:   net.JoinHostPort("0.0.0.0", strconv.Itoa(params.Cfg.Worker.Port)),
		echo:   e,
		logger: params.Logger,
	}
	params.Lc.Append(fx.StopHook(func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
		defer cancel()
		srv.logger.Info("Shutting down push receiver")

		return errors.WithStack(srv.echo.Shutdown(ctx))
	}))

	return srv, nil
}

func routes(e *echo.Echo, push *handler.PushHandler) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.POST("/push", push.HandlePush)
}

// Serve blocks until the server is shut down.
func (s *pushServer) Serve(context.Context) error {
	s.logger.Info("Push receiver listening", slog.String("addr", s.addr))
	err := s.echo.Start(s.addr)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return errors.WithStack(err)
}
