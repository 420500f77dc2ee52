package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-that-is-long-enough-for-hs256"

func TestTokenManager_RoundTrip(t *testing.T) {
	m := NewTokenManager(testSecret, time.Hour)

	token, err := m.Issue(42)
	require.NoError(t, err)

	id, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
}

func TestTokenManager_Claims(t *testing.T) {
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	m := NewTokenManager(testSecret, 7*24*time.Hour)
	m.now = func() time.Time { return fixed }

	token, err := m.Issue(7)
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(token, claims)
	require.NoError(t, err)

	assert.Equal(t, "7", claims["sub"])
	assert.Equal(t, "healthtrack-api", claims["iss"])
	assert.Equal(t, "healthtrack-client", claims["aud"])
	assert.EqualValues(t, fixed.Add(7*24*time.Hour).Unix(), claims["exp"])
	assert.NotEmpty(t, claims["jti"])
}

func TestTokenManager_Rejects(t *testing.T) {
	m := NewTokenManager(testSecret, time.Hour)
	valid, err := m.Issue(1)
	require.NoError(t, err)

	expired := NewTokenManager(testSecret, time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expiredToken, err := expired.Issue(1)
	require.NoError(t, err)

	otherSecret, err := NewTokenManager("a-completely-different-secret-value", time.Hour).Issue(1)
	require.NoError(t, err)

	sign := func(method jwt.SigningMethod, key any, claims jwt.MapClaims) string {
		s, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return s
	}
	baseClaims := func() jwt.MapClaims {
		return jwt.MapClaims{
			"sub": "1",
			"iss": tokenIssuer,
			"aud": tokenAudience,
			"exp": time.Now().Add(time.Hour).Unix(),
		}
	}

	wrongAudience := baseClaims()
	wrongAudience["aud"] = "someone-else"

	noExpiry := baseClaims()
	delete(noExpiry, "exp")

	badSubject := baseClaims()
	badSubject["sub"] = "abc"

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not.a.token"},
		{name: "empty", token: ""},
		{name: "expired", token: expiredToken},
		{name: "wrong secret", token: otherSecret},
		{name: "tampered", token: valid + "x"},
		{name: "alg none", token: sign(jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, baseClaims())},
		{name: "wrong audience", token: sign(jwt.SigningMethodHS256, []byte(testSecret), wrongAudience)},
		{name: "missing expiry", token: sign(jwt.SigningMethodHS256, []byte(testSecret), noExpiry)},
		{name: "non-numeric subject", token: sign(jwt.SigningMethodHS256, []byte(testSecret), badSubject)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.Verify(tt.token)
			assert.Error(t, err)
		})
	}
}
