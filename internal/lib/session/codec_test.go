package session

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "test-secret-key"
	adminEmail = "admin@washpanel.dev"
)

func TestCodec_IssueAndParse(t *testing.T) {
	codec := NewCodec(testSecret, adminEmail, time.Hour)

	token, err := codec.Issue(adminEmail)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	sess, err := codec.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, adminEmail, sess.Email)
	assert.WithinDuration(t, time.Now(), sess.CreatedAt, 5*time.Second)
}

func TestCodec_Parse_Rejects(t *testing.T) {
	codec := NewCodec(testSecret, adminEmail, time.Hour)

	otherSecret := NewCodec("another-secret", adminEmail, time.Hour)
	forged, err := otherSecret.Issue(adminEmail)
	require.NoError(t, err)

	foreign, err := codec.Issue("intruder@example.com")
	require.NoError(t, err)

	expiredCodec := NewCodec(testSecret, adminEmail, -time.Minute)
	expired, err := expiredCodec.Issue(adminEmail)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "мусор вместо токена", token: "not-a-token"},
		{name: "пустой токен", token: ""},
		{name: "подпись другим ключом", token: forged},
		{name: "просроченный токен", token: expired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess, err := codec.Parse(tt.token)
			assert.Error(t, err)
			assert.Nil(t, sess)
		})
	}

	t.Run("email не администратора", func(t *testing.T) {
		sess, err := codec.Parse(foreign)
		assert.True(t, errors.Is(err, ErrUnknownSubject))
		assert.Nil(t, sess)
	})
}
