package list

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kaiquedev/washadmin/internal/models"
)

type UserServiceMock struct {
	mock.Mock
}

func (m *UserServiceMock) List(ctx context.Context) ([]models.PanelUser, models.Stats, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]models.PanelUser)
	stats, _ := args.Get(1).(models.Stats)
	return users, stats, args.Error(2)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestListHandler_ServeHTTP(t *testing.T) {
	t.Run("успешный список", func(t *testing.T) {
		mockService := new(UserServiceMock)
		mockService.On("List", mock.Anything).Return([]models.PanelUser{
			{ID: "uid-1", Email: "a@example.com", Name: "Ana", Status: models.StatusPro},
			{ID: "uid-2", Email: "b@example.com", Name: "Sem nome", Status: models.StatusFree},
		}, models.Stats{Total: 2, Free: 1, Pro: 1}, nil)

		handler := New(newNoopLogger(), mockService)

		req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var got struct {
			Users []models.PanelUser `json:"users"`
			Stats models.Stats       `json:"stats"`
		}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
		assert.Len(t, got.Users, 2)
		assert.Equal(t, 2, got.Stats.Total)
		assert.Equal(t, got.Stats.Total, got.Stats.Free+got.Stats.Pending+got.Stats.Pro)
	})

	t.Run("ошибка внешнего сервиса", func(t *testing.T) {
		mockService := new(UserServiceMock)
		mockService.On("List", mock.Anything).
			Return(nil, models.Stats{}, errors.New("upstream down"))

		handler := New(newNoopLogger(), mockService)

		req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), `"error":"failed to fetch users"`)
	})
}
