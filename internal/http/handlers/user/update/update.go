// Package update реализует HTTP-обработчик переходов статуса подписки пользователя.
//
// Тело запроса содержит действие (approve, revoke, extend), опциональное число дней
// (по умолчанию 30) и опциональные заметки администратора. Неизвестное действие —
// ошибка клиента, отказ внешнего сервиса — ошибка сервера.
package update

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"
	"github.com/google/uuid"

	"github.com/kaiquedev/washadmin/internal/http/response"
	"github.com/kaiquedev/washadmin/internal/lib/sl"
	"github.com/kaiquedev/washadmin/internal/models"
	userservice "github.com/kaiquedev/washadmin/internal/services/user"
)

// Request — структура входных данных для перехода статуса.
type Request struct {
	Action string `json:"action" validate:"required,oneof=approve revoke extend"`
	Days   int    `json:"days,omitempty" validate:"omitempty,gt=0"`
	Notes  string `json:"notes,omitempty"`
}

// Service описывает интерфейс бизнес-логики переходов статуса подписки.
type Service interface {
	Approve(ctx context.Context, userID string, days int, notes string) error
	Revoke(ctx context.Context, userID string, notes string) error
	Extend(ctx context.Context, userID string, days int, notes string) error
}

// Handler обрабатывает HTTP-запросы переходов статуса.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Переход статуса подписки
// @Description Выполняет approve, revoke или extend для пользователя по его ID.
// @Tags Users
// @Accept  json
// @Produce  json
// @Param id path string true "ID пользователя"
// @Param request body Request true "Действие и параметры"
// @Success 200 {object} response.SuccessResponse "Действие выполнено"
// @Failure 400 {object} response.ErrorResponse "Неизвестное действие или некорректный запрос"
// @Failure 401 {object} response.ErrorResponse "Нет активной сессии"
// @Failure 500 {object} response.ErrorResponse "Ошибка внешнего сервиса"
// @Router /api/users/{id} [patch]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.update"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		log.Error("invalid user id", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid user id"))
		return
	}

	var req Request
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Any("request", req))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	days := req.Days
	if days <= 0 {
		days = userservice.DefaultProDays
	}

	var err error
	var message string
	switch req.Action {
	case "approve":
		err = h.service.Approve(r.Context(), id, days, req.Notes)
		message = "user approved as pro"
	case "revoke":
		err = h.service.Revoke(r.Context(), id, req.Notes)
		message = "pro plan revoked"
	case "extend":
		err = h.service.Extend(r.Context(), id, days, req.Notes)
		message = fmt.Sprintf("plan extended by %d days", days)
	}

	if err != nil {
		if errors.Is(err, models.ErrSubscriptionNotFound) {
			log.Error("no subscription to extend", slog.String("user_id", id))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("user has no subscription to extend"))
			return
		}
		log.Error("failed to update user", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to update user"))
		return
	}

	log.Info("user updated", slog.String("user_id", id), slog.String("action", req.Action))
	render.JSON(w, r, response.Success(message))
}
