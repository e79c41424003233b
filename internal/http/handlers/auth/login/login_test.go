package login

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/kaiquedev/washadmin/internal/lib/session"
	services "github.com/kaiquedev/washadmin/internal/services/auth"
)

type AuthServiceMock struct {
	mock.Mock
}

func (m *AuthServiceMock) Login(email, password string) (string, error) {
	args := m.Called(email, password)
	return args.String(0), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestLoginHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    any
		setupMock      func(*AuthServiceMock)
		expectedStatus int
		expectedBody   string
		expectCookie   bool
	}{
		{
			name:        "успешный вход",
			requestBody: Request{Email: "admin@washpanel.dev", Password: "secret-pass"},
			setupMock: func(m *AuthServiceMock) {
				m.On("Login", "admin@washpanel.dev", "secret-pass").Return("signed-token", nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"success":true`,
			expectCookie:   true,
		},
		{
			name:           "некорректный JSON",
			requestBody:    "not a json",
			setupMock:      func(_ *AuthServiceMock) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"email and password are required"`,
		},
		{
			name:           "отсутствует пароль",
			requestBody:    Request{Email: "admin@washpanel.dev"},
			setupMock:      func(_ *AuthServiceMock) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "field Password is a required field",
		},
		{
			name:        "неверные учетные данные",
			requestBody: Request{Email: "admin@washpanel.dev", Password: "wrong"},
			setupMock: func(m *AuthServiceMock) {
				m.On("Login", "admin@washpanel.dev", "wrong").
					Return("", services.ErrInvalidCredentials)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"error":"invalid credentials"`,
		},
		{
			name:        "внутренняя ошибка",
			requestBody: Request{Email: "admin@washpanel.dev", Password: "secret-pass"},
			setupMock: func(m *AuthServiceMock) {
				m.On("Login", "admin@washpanel.dev", "secret-pass").
					Return("", errors.New("signing failure"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"error":"internal server error"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(AuthServiceMock)
			tt.setupMock(mockService)

			handler := New(newNoopLogger(), mockService, "prod", 7*24*time.Hour)

			var bodyBytes []byte
			switch v := tt.requestBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				var err error
				bodyBytes, err = json.Marshal(v)
				if err != nil {
					t.Fatal(err)
				}
			}

			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(bodyBytes))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			var sessionCookie *http.Cookie
			for _, c := range w.Result().Cookies() {
				if c.Name == session.CookieName {
					sessionCookie = c
				}
			}
			if tt.expectCookie {
				assert.NotNil(t, sessionCookie)
				assert.Equal(t, "signed-token", sessionCookie.Value)
				assert.True(t, sessionCookie.HttpOnly)
				assert.True(t, sessionCookie.Secure)
				assert.Equal(t, int((7 * 24 * time.Hour).Seconds()), sessionCookie.MaxAge)
				assert.Equal(t, "/", sessionCookie.Path)
			} else {
				assert.Nil(t, sessionCookie)
			}

			mockService.AssertExpectations(t)
		})
	}
}
