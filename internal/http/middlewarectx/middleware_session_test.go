package middlewarectx

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaiquedev/washadmin/internal/lib/session"
)

const adminEmail = "admin@washpanel.dev"

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

// codecParser адаптирует session.Codec к интерфейсу SessionParser
type codecParser struct {
	codec session.Codec
}

func (p codecParser) ParseSession(token string) (*session.AdminSession, error) {
	return p.codec.Parse(token)
}

func TestSessionMiddleware(t *testing.T) {
	codec := session.NewCodec("test-secret", adminEmail, time.Hour)
	validToken, err := codec.Issue(adminEmail)
	require.NoError(t, err)

	foreignToken, err := codec.Issue("intruder@example.com")
	require.NoError(t, err)

	tests := []struct {
		name           string
		cookie         *http.Cookie
		expectedStatus int
		expectNext     bool
	}{
		{
			name:           "валидная сессия",
			cookie:         &http.Cookie{Name: session.CookieName, Value: validToken},
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
		{
			name:           "без cookie",
			cookie:         nil,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "подделанное значение",
			cookie:         &http.Cookie{Name: session.CookieName, Value: "forged"},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "токен на чужой email",
			cookie:         &http.Cookie{Name: session.CookieName, Value: foreignToken},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			var gotEmail any
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				gotEmail = r.Context().Value(Admin)
			})

			handler := SessionMiddleware(codecParser{codec: codec}, newNoopLogger())(next)

			req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectNext, nextCalled)
			if tt.expectNext {
				assert.Equal(t, adminEmail, gotEmail)
			} else {
				assert.Contains(t, w.Body.String(), `"error":"unauthorized"`)
			}
		})
	}
}
