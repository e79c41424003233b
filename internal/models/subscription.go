package models

import (
	"errors"
	"time"
)

// ErrSubscriptionNotFound возвращается, когда у пользователя нет строки подписки.
var ErrSubscriptionNotFound = errors.New("subscription row not found")

// Статусы подписки пользователя.
const (
	StatusFree    = "free"    // Базовый доступ, строка подписки может отсутствовать
	StatusPending = "pending" // Пользователь запросил тариф pro и ждет одобрения
	StatusPro     = "pro"     // Оплачиваемый тариф с датой истечения
)

// UserSubscription представляет строку подписки пользователя во внешней таблице,
// по одной строке на пользователя (ключ user_id). Строка создается при первом
// upsert, отсутствие строки трактуется как статус free.
type UserSubscription struct {
	UserID           string     `json:"user_id"`
	Status           string     `json:"status"`
	ApprovedAt       *time.Time `json:"approved_at,omitempty"`
	ExpiresAt        *time.Time `json:"expires_at"`
	ProDaysRemaining int        `json:"pro_days_remaining"`
	AdminNotes       string     `json:"admin_notes,omitempty"`
	RequestedAt      *time.Time `json:"requested_at,omitempty"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// SubscriptionUpdate частичное обновление существующей строки подписки.
// Используется операцией extend, когда строка заведомо существует.
type SubscriptionUpdate struct {
	ExpiresAt        *time.Time `json:"expires_at"`
	ProDaysRemaining int        `json:"pro_days_remaining"`
	AdminNotes       string     `json:"admin_notes,omitempty"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
