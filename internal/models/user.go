// Package models содержит доменные модели панели: учетную запись пользователя
// из внешнего сервиса идентификации, строку подписки из внешней таблицы
// и объединённое представление для выдачи в интерфейс администратора.
package models

import "time"

// UserAccount представляет учетную запись конечного пользователя
// во внешнем сервисе идентификации. Панель читает эти записи и может их удалять,
// но не изменяет.
type UserAccount struct {
	ID           string         `json:"id"`
	Email        string         `json:"email"`
	CreatedAt    time.Time      `json:"created_at"`
	LastSignInAt *time.Time     `json:"last_sign_in_at"`
	UserMetadata map[string]any `json:"user_metadata"`
}

// Name возвращает отображаемое имя пользователя из метаданных учетной записи.
func (u *UserAccount) Name() string {
	if name, ok := u.UserMetadata["name"].(string); ok && name != "" {
		return name
	}
	return "Sem nome"
}

// PanelUser объединённое представление учетной записи и подписки,
// отдаваемое в интерфейс администратора. Пользователь без строки подписки
// отображается со статусом free и нулевым остатком дней.
type PanelUser struct {
	ID               string     `json:"id"`
	Email            string     `json:"email"`
	Name             string     `json:"name"`
	CreatedAt        time.Time  `json:"created_at"`
	LastSignIn       *time.Time `json:"last_sign_in"`
	Status           string     `json:"status"`
	ExpiresAt        *time.Time `json:"expires_at"`
	RequestedAt      *time.Time `json:"requested_at"`
	ProDaysRemaining int        `json:"pro_days_remaining"`
}

// Stats счетчики пользователей по статусам подписки.
// Инвариант: Total = Free + Pending + Pro.
type Stats struct {
	Total   int `json:"total"`
	Free    int `json:"free"`
	Pending int `json:"pending"`
	Pro     int `json:"pro"`
}
