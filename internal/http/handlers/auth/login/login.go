// Package login реализует HTTP-обработчик входа администратора в панель.
//
// В нём определяется структура Request для входных данных, выполняется декодирование JSON,
// проверка и валидация полей, а также делегирование проверки учетных данных сервису.
// При успешном входе выставляется http-only cookie с подписанным сессионным токеном.
package login

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/kaiquedev/washadmin/internal/http/response"
	"github.com/kaiquedev/washadmin/internal/lib/session"
	"github.com/kaiquedev/washadmin/internal/lib/sl"
	services "github.com/kaiquedev/washadmin/internal/services/auth"
)

// Request — структура входных данных для входа администратора.
type Request struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Service описывает интерфейс бизнес-логики аутентификации администратора.
type Service interface {
	Login(email, password string) (string, error)
}

// Handler обрабатывает HTTP-запросы входа в панель.
type Handler struct {
	log        *slog.Logger        // Логгер для записи операций и ошибок
	service    Service             // Сервис проверки учетных данных
	validate   *validator.Validate // Валидатор для проверки входных данных
	env        string              // Окружение: в prod cookie выставляется с флагом Secure
	sessionTTL time.Duration       // Время жизни сессионной cookie
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service, env string, sessionTTL time.Duration) *Handler {
	return &Handler{
		log:        log,
		service:    service,
		validate:   validator.New(),
		env:        env,
		sessionTTL: sessionTTL,
	}
}

// ServeHTTP godoc
// @Summary Вход администратора
// @Description Проверяет email и пароль администратора. При успехе выставляет сессионную cookie.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body Request true "Учетные данные администратора"
// @Success 200 {object} response.SuccessResponse "Успешный вход"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или отсутствующие поля"
// @Failure 401 {object} response.ErrorResponse "Неверные учетные данные"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/auth/login [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("email and password are required"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	token, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			log.Error("login rejected", slog.String("email", req.Email))
			w.WriteHeader(http.StatusUnauthorized)
			render.JSON(w, r, response.Error("invalid credentials"))
			return
		}
		log.Error("failed to issue session", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("internal server error"))
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.env == "prod",
		SameSite: http.SameSiteLaxMode,
	})

	log.Info("login success", slog.String("email", req.Email))
	render.JSON(w, r, response.Success(""))
}
