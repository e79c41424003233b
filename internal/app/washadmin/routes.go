// Package washadmin предоставляет маршруты и жизненный цикл приложения панели.
package washadmin

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/kaiquedev/washadmin/internal/config"
	"github.com/kaiquedev/washadmin/internal/http/handlers/auth/login"
	"github.com/kaiquedev/washadmin/internal/http/handlers/auth/logout"
	"github.com/kaiquedev/washadmin/internal/http/handlers/ui"
	"github.com/kaiquedev/washadmin/internal/http/handlers/user/list"
	"github.com/kaiquedev/washadmin/internal/http/handlers/user/remove"
	"github.com/kaiquedev/washadmin/internal/http/handlers/user/update"
	"github.com/kaiquedev/washadmin/internal/http/middlewarectx"
	authservice "github.com/kaiquedev/washadmin/internal/services/auth"
	userservice "github.com/kaiquedev/washadmin/internal/services/user"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, cfg *config.Config, authService *authservice.AuthService, userService *userservice.UserService) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api", func(r chi.Router) {
		// Открытая конечная точка входа
		r.Post("/auth/login", login.New(logger, authService, cfg.Env, cfg.SessionTTL).ServeHTTP)

		// Группа с проверкой сессионной cookie
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.SessionMiddleware(authService, logger))
			r.Post("/auth/logout", logout.New(logger, cfg.Env).ServeHTTP)
			r.Get("/users", list.New(logger, userService).ServeHTTP)
			r.Patch("/users/{id}", update.New(logger, userService).ServeHTTP)
			r.Delete("/users/{id}", remove.New(logger, userService).ServeHTTP)
		})
	})

	// Страницы панели
	uiHandler := ui.New(logger, authService, "./web/templates")
	r.Get("/login", uiHandler.Login)
	r.Get("/", uiHandler.Dashboard)
	r.Get("/users", uiHandler.Users)

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
