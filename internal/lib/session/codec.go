// Package session реализует выпуск и разбор подписанного сессионного токена администратора.
//
// Токен хранится в http-only cookie admin_session и содержит email администратора
// и время создания сессии. Подпись HS256 исключает подделку cookie на стороне клиента:
// токен без корректной подписи, просроченный или выданный на другой email отклоняется.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName имя cookie, в которой браузер хранит сессионный токен.
const CookieName = "admin_session"

// ErrUnknownSubject возвращается, когда подпись токена корректна,
// но email внутри не совпадает с email администратора панели.
var ErrUnknownSubject = errors.New("session subject is not the panel administrator")

// AdminSession данные активной сессии администратора.
type AdminSession struct {
	Email     string    // Email администратора
	CreatedAt time.Time // Время входа в панель
}

// Claims описывает полезную нагрузку сессионного токена.
type Claims struct {
	Email                string `json:"email"` // Email администратора
	jwt.RegisteredClaims        // Встроенные стандартные claims JWT (ExpiresAt, IssuedAt и пр.)
}

// Codec описывает интерфейс для выпуска и разбора сессионных токенов.
type Codec interface {
	// Issue создает подписанный токен для указанного email
	Issue(email string) (string, error)
	// Parse проверяет подпись и срок действия, возвращает данные сессии
	Parse(tokenStr string) (*AdminSession, error)
}

// CodecImpl реализует интерфейс Codec с использованием секретного ключа,
// email администратора и времени жизни сессии.
type CodecImpl struct {
	secretKey  string        // Секретный ключ для подписи токенов.
	adminEmail string        // Единственный email, на который выдаются сессии.
	sessionTTL time.Duration // Время жизни сессии.
}

// NewCodec создаёт новый экземпляр CodecImpl.
func NewCodec(secretKey, adminEmail string, ttl time.Duration) *CodecImpl {
	return &CodecImpl{
		secretKey:  secretKey,
		adminEmail: adminEmail,
		sessionTTL: ttl,
	}
}

// Issue создает сессионный токен с заданным email, подписывая его секретным ключом.
//
// Время жизни токена определяется полем sessionTTL.
func (c *CodecImpl) Issue(email string) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.sessionTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(c.secretKey))
}

// Parse разбирает сессионный токен, проверяет подпись, срок действия
// и принадлежность администратору. Любая ошибка означает отсутствие сессии.
func (c *CodecImpl) Parse(tokenStr string) (*AdminSession, error) {
	const op = "session.Parse"
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(_ *jwt.Token) (any, error) {
		return []byte(c.secretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%s: invalid token", op)
	}
	if claims.Email != c.adminEmail {
		return nil, fmt.Errorf("%s: %w", op, ErrUnknownSubject)
	}
	return &AdminSession{
		Email:     claims.Email,
		CreatedAt: claims.IssuedAt.Time,
	}, nil
}
