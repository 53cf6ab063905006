package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("test-issuer", "alice", time.Hour, "secret-key")
	require.NoError(t, err)

	assert.NotEmpty(t, token.SignedString)
	require.NotNil(t, token.Token)
	assert.Equal(t, "alice", token.UserID)

	claims, ok := token.Token.Claims.(*jwt.RegisteredClaims)
	require.True(t, ok)
	assert.Equal(t, "test-issuer", claims.Issuer)
	assert.Equal(t, "alice", claims.Subject)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		userID   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", "u", time.Hour, "key"},
		{"empty user", "iss", "", time.Hour, "key"},
		{"zero duration", "iss", "u", 0, "key"},
		{"empty key", "iss", "u", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.userID, tt.duration, tt.key)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	generated, err := GenerateJWTToken("test-issuer", "bob", 5*time.Minute, "secret-key")
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(generated.SignedString, "secret-key", "test-issuer")
	require.NoError(t, err)
	assert.Equal(t, "bob", parsed.UserID)
	assert.True(t, parsed.Token.Valid)
}

func TestValidateAndParseJWTToken_Failures(t *testing.T) {
	valid, err := GenerateJWTToken("test-issuer", "bob", time.Minute, "secret-key")
	require.NoError(t, err)

	expiredClaims := jwt.RegisteredClaims{
		Issuer:    "test-issuer",
		Subject:   "bob",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expiredClaims).SignedString([]byte("secret-key"))
	require.NoError(t, err)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    "test-issuer",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}).SignedString([]byte("secret-key"))
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		key    string
		issuer string
	}{
		{name: "wrong key", token: valid.SignedString, key: "other", issuer: "test-issuer"},
		{name: "wrong issuer", token: valid.SignedString, key: "secret-key", issuer: "someone-else"},
		{name: "expired", token: expired, key: "secret-key", issuer: "test-issuer"},
		{name: "no subject", token: noSubject, key: "secret-key", issuer: "test-issuer"},
		{name: "malformed", token: "not.a.jwt", key: "secret-key", issuer: "test-issuer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseJWTToken(tt.token, tt.key, tt.issuer)
			assert.Error(t, err)
		})
	}
}

func TestParseBearerToken(t *testing.T) {
	token, err := ParseBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	token, err = ParseBearerToken("  bearer   xyz ")
	require.NoError(t, err)
	assert.Equal(t, "xyz", token)

	for _, header := range []string{"", "Bearer", "Basic abc", "Bearer a b"} {
		_, err = ParseBearerToken(header)
		assert.Error(t, err, header)
	}
}

func TestSubjectFromToken(t *testing.T) {
	token, err := GenerateJWTToken("issuer", "alice", time.Hour, "secret")
	require.NoError(t, err)

	sub, err := SubjectFromToken(token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "alice", sub)

	_, err = SubjectFromToken("not-a-token")
	assert.Error(t, err)
}
