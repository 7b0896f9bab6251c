package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := NewJWTService(testSecret, time.Hour)

	token, err := svc.GenerateToken(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestJWTService_ReissueDoesNotInvalidate(t *testing.T) {
	svc := NewJWTService(testSecret, time.Hour)

	first, err := svc.GenerateToken(7)
	require.NoError(t, err)
	second, err := svc.GenerateToken(7)
	require.NoError(t, err)

	// No revocation state: both tokens stay valid until they expire.
	_, err = svc.ValidateToken(first)
	assert.NoError(t, err)
	_, err = svc.ValidateToken(second)
	assert.NoError(t, err)
}

func TestJWTService_ValidateRejections(t *testing.T) {
	svc := NewJWTService(testSecret, time.Hour)

	valid, err := svc.GenerateToken(42)
	require.NoError(t, err)

	expiredSvc := NewJWTService(testSecret, -time.Hour)
	expired, err := expiredSvc.GenerateToken(42)
	require.NoError(t, err)

	otherSvc := NewJWTService(strings.Repeat("x", 64), time.Hour)
	foreign, err := otherSvc.GenerateToken(42)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "tampered signature", token: valid + "x"},
		{name: "truncated token", token: valid[:len(valid)/2]},
		{name: "garbage", token: "not.a.jwt"},
		{name: "empty", token: ""},
		{name: "expired", token: expired},
		{name: "signed with a different secret", token: foreign},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}
