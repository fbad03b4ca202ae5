package jwt_test

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/lot-allocation-bff/pkg/jwt"
)

const secret = "jwt-package-secret"

func sign(t *testing.T, method gojwt.SigningMethod, key any, claims jwt.Claims) string {
	t.Helper()
	tok, err := gojwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return tok
}

func TestParse_DevuelveIdentidad(t *testing.T) {
	tok, err := jwt.Generate(secret, "u-1", "suzuki", "allocator", "lot-management", 5)
	require.NoError(t, err)

	claims, err := jwt.Parse(secret, tok)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "suzuki", claims.Username)
	assert.Equal(t, "allocator", claims.Role)
	assert.Equal(t, "u-1", claims.Subject)
}

func TestParse_UsaSubjectSiFaltaUserID(t *testing.T) {
	tok := sign(t, gojwt.SigningMethodHS256, []byte(secret), jwt.Claims{
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   "sub-42",
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
		Role: "viewer",
	})

	claims, err := jwt.Parse(secret, tok)
	require.NoError(t, err)
	assert.Equal(t, "sub-42", claims.UserID)
}

func TestParse_Rechazos(t *testing.T) {
	expired, err := jwt.Generate(secret, "u-1", "suzuki", "admin", "lot-management", -1)
	require.NoError(t, err)
	valid, err := jwt.Generate(secret, "u-1", "suzuki", "admin", "lot-management", 5)
	require.NoError(t, err)
	anonymous, err := jwt.Generate(secret, "", "suzuki", "admin", "lot-management", 5)
	require.NoError(t, err)
	unsigned := sign(t, gojwt.SigningMethodNone, gojwt.UnsafeAllowNoneSignatureType, jwt.Claims{UserID: "u-1"})

	cases := map[string]struct {
		secret string
		token  string
	}{
		"expirado":         {secret, expired},
		"sin usuario":      {secret, anonymous},
		"alg none":         {secret, unsigned},
		"otro secreto":     {"distinto", valid},
		"secreto vacío":    {"", valid},
		"texto no firmado": {secret, "a.b.c"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := jwt.Parse(tc.secret, tc.token)
			assert.Error(t, err)
		})
	}
}

func TestGenerate_SecretoVacio(t *testing.T) {
	_, err := jwt.Generate("", "u-1", "suzuki", "admin", "lot-management", 5)
	assert.Error(t, err)
}
