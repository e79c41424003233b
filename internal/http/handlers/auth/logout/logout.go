// Package logout реализует HTTP-обработчик выхода администратора из панели.
// Сессия существует только как cookie на стороне клиента, поэтому выход —
// это сброс cookie с немедленным истечением.
package logout

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/kaiquedev/washadmin/internal/http/response"
	"github.com/kaiquedev/washadmin/internal/lib/session"
)

// Handler обрабатывает HTTP-запросы выхода из панели.
type Handler struct {
	log *slog.Logger
	env string
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, env string) *Handler {
	return &Handler{
		log: log,
		env: env,
	}
}

// ServeHTTP godoc
// @Summary Выход администратора
// @Description Сбрасывает сессионную cookie.
// @Tags Auth
// @Produce  json
// @Success 200 {object} response.SuccessResponse "Сессия завершена"
// @Failure 401 {object} response.ErrorResponse "Нет активной сессии"
// @Router /api/auth/logout [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.logout"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.env == "prod",
		SameSite: http.SameSiteLaxMode,
	})

	log.Info("logout success")
	render.JSON(w, r, response.Success(""))
}
