package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dserranox/blschool-intranet/internal/common"
)

func TestGenerateAndParseToken(t *testing.T) {
	secret := []byte("test-secret")

	token, expiresAt, err := GenerateToken("mgarcia", []string{"ADMIN", "DOCENTE"}, 7, secret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := ParseToken(token, secret)
	require.NoError(t, err)
	require.Equal(t, "mgarcia", claims.Username)
	require.Equal(t, []string{"ADMIN", "DOCENTE"}, claims.Roles)
	require.Equal(t, int64(7), claims.PersonaID)
	require.NotEmpty(t, claims.ID, "token must carry a jti")
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, _, err := GenerateToken("mgarcia", nil, 0, []byte("secret-a"), time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(token, []byte("secret-b"))
	require.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestParseToken_Expired(t *testing.T) {
	secret := []byte("test-secret")
	token, _, err := GenerateToken("mgarcia", nil, 0, secret, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token, secret)
	require.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := ParseToken("not.a.token", []byte("test-secret"))
	require.ErrorIs(t, err, common.ErrInvalidToken)
}
