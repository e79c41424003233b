// Package middlewarectx содержит HTTP middleware для проверки сессии администратора.
//
// SessionMiddleware читает cookie admin_session, разбирает подписанный токен
// и в случае успеха добавляет в контекст email администратора.
// Запрос без валидной сессии отклоняется с HTTP 401 до любых побочных эффектов.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/kaiquedev/washadmin/internal/http/response"
	"github.com/kaiquedev/washadmin/internal/lib/session"
	"github.com/kaiquedev/washadmin/internal/lib/sl"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

// Admin — ключ для email администратора в контексте.
const Admin Key = "admin_email"

// SessionParser описывает интерфейс сервиса для разбора сессионного токена.
type SessionParser interface {
	ParseSession(token string) (*session.AdminSession, error)
}

// SessionMiddleware возвращает HTTP middleware, который проверяет сессионную cookie.
//
// Если токен валиден, добавляет email администратора в контекст запроса,
// иначе возвращает ошибку с HTTP статусом 401 Unauthorized.
func SessionMiddleware(auth SessionParser, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.SessionMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			cookie, err := r.Cookie(session.CookieName)
			if err != nil {
				log.Error("missing session cookie")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("unauthorized"))
				return
			}

			sess, err := auth.ParseSession(cookie.Value)
			if err != nil {
				log.Error("invalid or expired session", sl.Err(err))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("unauthorized"))
				return
			}

			ctx := context.WithValue(r.Context(), Admin, sess.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
