package washadmin

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/kaiquedev/washadmin/internal/config"
	"github.com/kaiquedev/washadmin/internal/lib/session"
	authservice "github.com/kaiquedev/washadmin/internal/services/auth"
	userservice "github.com/kaiquedev/washadmin/internal/services/user"
	"github.com/kaiquedev/washadmin/internal/supabase"
)

// App инкапсулирует HTTP-сервер панели и его зависимости.
type App struct {
	server *http.Server
	logger *slog.Logger
}

// New собирает приложение: шлюз к внешнему сервису, сервисы и маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	gateway := supabase.NewClient(cfg.Supabase)
	if err := gateway.Health(ctx); err != nil {
		return nil, err
	}

	codec := session.NewCodec(cfg.SecretKey, cfg.Admin.Email, cfg.SessionTTL)
	authService := authservice.NewAuthService(cfg.Admin, codec)
	userService := userservice.NewUserService(gateway, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, cfg, authService, userService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его при отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		return a.server.Shutdown(timeoutCtx)
	}
}
