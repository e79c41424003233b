// Package list реализует HTTP-обработчик выдачи объединённого списка пользователей
// со счетчиками по статусам подписки.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/kaiquedev/washadmin/internal/http/response"
	"github.com/kaiquedev/washadmin/internal/lib/sl"
	"github.com/kaiquedev/washadmin/internal/models"
)

// Service описывает интерфейс бизнес-логики списка пользователей.
type Service interface {
	List(ctx context.Context) ([]models.PanelUser, models.Stats, error)
}

// Handler обрабатывает HTTP-запросы списка пользователей.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список пользователей
// @Description Возвращает всех пользователей с данными подписки и счетчиками по статусам.
// @Tags Users
// @Produce  json
// @Success 200 {object} map[string]any "Пользователи и статистика"
// @Failure 401 {object} response.ErrorResponse "Нет активной сессии"
// @Failure 500 {object} response.ErrorResponse "Ошибка внешнего сервиса"
// @Router /api/users [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	users, stats, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list users", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to fetch users"))
		return
	}

	log.Info("listed users", slog.Int("count", stats.Total))
	render.JSON(w, r, map[string]any{
		"users": users,
		"stats": stats,
	})
}
