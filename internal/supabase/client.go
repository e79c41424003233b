// Package supabase реализует шлюз к внешнему сервису идентификации и БД.
//
// Учетные записи пользователей читаются и удаляются через административный API
// сервиса аутентификации, строки подписок — через REST-интерфейс таблицы
// user_subscriptions. Каждый метод — одиночный запрос без повторов и кеширования;
// любой неуспешный статус внешнего сервиса прерывает операцию.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/kaiquedev/washadmin/internal/config"
	"github.com/kaiquedev/washadmin/internal/models"
)

// Client инкапсулирует доступ к внешнему сервису.
// Административные вызовы подписываются сервисным ключом,
// проверка доступности — публичным.
type Client struct {
	baseURL    string
	serviceKey string
	anonKey    string
	httpClient *http.Client
}

// NewClient создаёт новый клиент внешнего сервиса из секции конфига.
func NewClient(cfg config.Supabase) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.URL, "/"),
		serviceKey: cfg.ServiceKey,
		anonKey:    cfg.AnonKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body any, key string) (*http.Request, error) {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, reqURL, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", key)
	req.Header.Set("Authorization", "Bearer "+key)
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.New("unexpected status: " + resp.Status)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Health проверяет доступность внешнего сервиса публичным ключом.
func (c *Client) Health(ctx context.Context) error {
	const op = "supabase.Health"
	req, err := c.newRequest(ctx, http.MethodGet, "/auth/v1/health", nil, nil, c.anonKey)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := c.do(req, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ListUsers возвращает все учетные записи из сервиса идентификации.
func (c *Client) ListUsers(ctx context.Context) ([]models.UserAccount, error) {
	const op = "supabase.ListUsers"
	query := url.Values{}
	query.Set("page", "1")
	query.Set("per_page", "1000")
	req, err := c.newRequest(ctx, http.MethodGet, "/auth/v1/admin/users", query, nil, c.serviceKey)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	var result listUsersResponse
	if err := c.do(req, &result); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result.Users, nil
}

// DeleteUser удаляет учетную запись по ID. Зависимые строки удаляет сам
// внешний сервис каскадом.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	const op = "supabase.DeleteUser"
	req, err := c.newRequest(ctx, http.MethodDelete, "/auth/v1/admin/users/"+id, nil, nil, c.serviceKey)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := c.do(req, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ListSubscriptions возвращает все строки подписок.
func (c *Client) ListSubscriptions(ctx context.Context) ([]models.UserSubscription, error) {
	const op = "supabase.ListSubscriptions"
	query := url.Values{}
	query.Set("select", "*")
	req, err := c.newRequest(ctx, http.MethodGet, "/rest/v1/user_subscriptions", query, nil, c.serviceKey)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	var result []models.UserSubscription
	if err := c.do(req, &result); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// GetSubscription возвращает строку подписки пользователя
// или ErrSubscriptionNotFound, если строки нет.
func (c *Client) GetSubscription(ctx context.Context, userID string) (*models.UserSubscription, error) {
	const op = "supabase.GetSubscription"
	query := url.Values{}
	query.Set("select", "*")
	query.Set("user_id", "eq."+userID)
	req, err := c.newRequest(ctx, http.MethodGet, "/rest/v1/user_subscriptions", query, nil, c.serviceKey)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	var result []models.UserSubscription
	if err := c.do(req, &result); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("%s: %w", op, models.ErrSubscriptionNotFound)
	}
	return &result[0], nil
}

// UpsertSubscription создает или заменяет строку подписки по ключу user_id.
func (c *Client) UpsertSubscription(ctx context.Context, sub models.UserSubscription) error {
	const op = "supabase.UpsertSubscription"
	query := url.Values{}
	query.Set("on_conflict", "user_id")
	req, err := c.newRequest(ctx, http.MethodPost, "/rest/v1/user_subscriptions", query, sub, c.serviceKey)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Prefer", "resolution=merge-duplicates,return=minimal")
	if err := c.do(req, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// UpdateSubscription частично обновляет существующую строку подписки.
// Строку не создает: обновление при отсутствии строки молча не меняет ничего,
// поэтому вызывающая сторона обязана сначала убедиться, что строка есть.
func (c *Client) UpdateSubscription(ctx context.Context, userID string, upd models.SubscriptionUpdate) error {
	const op = "supabase.UpdateSubscription"
	query := url.Values{}
	query.Set("user_id", "eq."+userID)
	req, err := c.newRequest(ctx, http.MethodPatch, "/rest/v1/user_subscriptions", query, upd, c.serviceKey)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Prefer", "return=minimal")
	if err := c.do(req, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
