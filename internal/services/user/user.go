// Package services содержит бизнес-логику управления пользователями и их подписками:
// объединение учетных записей со строками подписок, счетчики по статусам
// и переходы статуса (approve, revoke, extend), выполняемые администратором.
package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/kaiquedev/washadmin/internal/models"
)

// DefaultProDays количество дней pro-доступа по умолчанию,
// когда администратор не указал срок.
const DefaultProDays = 30

// Gateway определяет методы шлюза к внешнему сервису идентификации и БД.
type Gateway interface {
	// ListUsers возвращает все учетные записи пользователей.
	ListUsers(ctx context.Context) ([]models.UserAccount, error)
	// DeleteUser удаляет учетную запись; зависимые строки удаляет внешний сервис.
	DeleteUser(ctx context.Context, id string) error
	// ListSubscriptions возвращает все строки подписок.
	ListSubscriptions(ctx context.Context) ([]models.UserSubscription, error)
	// GetSubscription возвращает строку подписки пользователя или ошибку, если строки нет.
	GetSubscription(ctx context.Context, userID string) (*models.UserSubscription, error)
	// UpsertSubscription создает или заменяет строку подписки по ключу user_id.
	UpsertSubscription(ctx context.Context, sub models.UserSubscription) error
	// UpdateSubscription частично обновляет существующую строку подписки.
	UpdateSubscription(ctx context.Context, userID string, upd models.SubscriptionUpdate) error
}

// UserService реализует операции администратора над пользователями.
type UserService struct {
	gw  Gateway
	log *slog.Logger
}

// NewUserService создает новый экземпляр UserService.
func NewUserService(gw Gateway, log *slog.Logger) *UserService {
	return &UserService{
		gw:  gw,
		log: log,
	}
}

// List возвращает объединённый список пользователей и счетчики по статусам.
// Пользователь без строки подписки получает статус free и нулевой остаток дней.
func (s *UserService) List(ctx context.Context) ([]models.PanelUser, models.Stats, error) {
	accounts, err := s.gw.ListUsers(ctx)
	if err != nil {
		return nil, models.Stats{}, err
	}
	subs, err := s.gw.ListSubscriptions(ctx)
	if err != nil {
		return nil, models.Stats{}, err
	}

	subByUser := make(map[string]models.UserSubscription, len(subs))
	for _, sub := range subs {
		subByUser[sub.UserID] = sub
	}

	users := make([]models.PanelUser, 0, len(accounts))
	var stats models.Stats
	for i := range accounts {
		acc := &accounts[i]
		user := models.PanelUser{
			ID:         acc.ID,
			Email:      acc.Email,
			Name:       acc.Name(),
			CreatedAt:  acc.CreatedAt,
			LastSignIn: acc.LastSignInAt,
			Status:     models.StatusFree,
		}
		if sub, ok := subByUser[acc.ID]; ok {
			user.Status = sub.Status
			user.ExpiresAt = sub.ExpiresAt
			user.RequestedAt = sub.RequestedAt
			user.ProDaysRemaining = sub.ProDaysRemaining
		}
		switch user.Status {
		case models.StatusPro:
			stats.Pro++
		case models.StatusPending:
			stats.Pending++
		default:
			stats.Free++
		}
		stats.Total++
		users = append(users, user)
	}
	return users, stats, nil
}

// Approve переводит пользователя на тариф pro на указанное число дней.
// Строка подписки создается, если её не было.
func (s *UserService) Approve(ctx context.Context, userID string, days int, notes string) error {
	if days <= 0 {
		days = DefaultProDays
	}
	now := time.Now()
	expiresAt := now.AddDate(0, 0, days)
	sub := models.UserSubscription{
		UserID:           userID,
		Status:           models.StatusPro,
		ApprovedAt:       &now,
		ExpiresAt:        &expiresAt,
		ProDaysRemaining: days,
		AdminNotes:       notes,
		UpdatedAt:        now,
	}
	if err := s.gw.UpsertSubscription(ctx, sub); err != nil {
		return err
	}
	s.log.Info("approved pro subscription",
		slog.String("user_id", userID), slog.Int("days", days))
	return nil
}

// Revoke возвращает пользователя на тариф free: дата истечения сбрасывается,
// остаток дней обнуляется. Строка подписки создается, если её не было.
func (s *UserService) Revoke(ctx context.Context, userID string, notes string) error {
	now := time.Now()
	sub := models.UserSubscription{
		UserID:           userID,
		Status:           models.StatusFree,
		ExpiresAt:        nil,
		ProDaysRemaining: 0,
		AdminNotes:       notes,
		UpdatedAt:        now,
	}
	if err := s.gw.UpsertSubscription(ctx, sub); err != nil {
		return err
	}
	s.log.Info("revoked pro subscription", slog.String("user_id", userID))
	return nil
}

// Extend продлевает существующую подписку на указанное число дней.
// База продления — текущая дата истечения, если она ещё не прошла, иначе сегодня.
// Если строки подписки нет, операция завершается ошибкой: пользователь
// никогда не был одобрен, и продлевать нечего.
func (s *UserService) Extend(ctx context.Context, userID string, days int, notes string) error {
	if days <= 0 {
		days = DefaultProDays
	}
	current, err := s.gw.GetSubscription(ctx, userID)
	if err != nil {
		return err
	}

	now := time.Now()
	base := now
	if current.ExpiresAt != nil && current.ExpiresAt.After(now) {
		base = *current.ExpiresAt
	}
	newExpiresAt := base.AddDate(0, 0, days)
	upd := models.SubscriptionUpdate{
		ExpiresAt:        &newExpiresAt,
		ProDaysRemaining: current.ProDaysRemaining + days,
		AdminNotes:       notes,
		UpdatedAt:        now,
	}
	if err := s.gw.UpdateSubscription(ctx, userID, upd); err != nil {
		return err
	}
	s.log.Info("extended pro subscription",
		slog.String("user_id", userID), slog.Int("days", days))
	return nil
}

// Delete удаляет учетную запись пользователя из внешнего сервиса.
func (s *UserService) Delete(ctx context.Context, userID string) error {
	if err := s.gw.DeleteUser(ctx, userID); err != nil {
		return err
	}
	s.log.Info("deleted user", slog.String("user_id", userID))
	return nil
}
