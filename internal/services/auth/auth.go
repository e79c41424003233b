// Package services содержит логику бизнес-уровня для проверки учетных данных
// администратора и работы с его сессией.
package services

import (
	"errors"

	"github.com/kaiquedev/washadmin/internal/config"
	"github.com/kaiquedev/washadmin/internal/lib/password"
	"github.com/kaiquedev/washadmin/internal/lib/session"
)

// ErrInvalidCredentials возвращается при неверной паре email/пароль.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService отвечает за проверку учетных данных администратора
// и выпуск/разбор сессионных токенов.
type AuthService struct {
	adminEmail   string
	passwordHash string
	codec        session.Codec
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(cfg config.Admin, codec session.Codec) *AuthService {
	return &AuthService{
		adminEmail:   cfg.Email,
		passwordHash: cfg.PasswordHash,
		codec:        codec,
	}
}

// Verify проверяет пару email/пароль. Чужой email отклоняется сразу,
// без обращения к bcrypt.
func (s *AuthService) Verify(email, rawPassword string) bool {
	if email != s.adminEmail {
		return false
	}
	return password.CompareHash(s.passwordHash, rawPassword) == nil
}

// Login проверяет учетные данные и выпускает подписанный сессионный токен.
func (s *AuthService) Login(email, rawPassword string) (string, error) {
	if !s.Verify(email, rawPassword) {
		return "", ErrInvalidCredentials
	}
	return s.codec.Issue(email)
}

// ParseSession разбирает сессионный токен из cookie.
// Любая ошибка разбора означает отсутствие сессии.
func (s *AuthService) ParseSession(token string) (*session.AdminSession, error) {
	return s.codec.Parse(token)
}
