package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pangrm/blogdee/backend/internal/models"
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string, userID uint) string {
	t.Helper()
	claims := &models.JwtCustomClaims{
		UserID: userID,
		Email:  "somchai@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func runMiddleware(authHeader string) (echo.Context, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := JWTAuthMiddleware()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return c, handler(c)
}

func TestJWTAuthMiddleware_ValidToken(t *testing.T) {
	token := signToken(t, "supersecretjwtkey", 2)

	c, err := runMiddleware("Bearer " + token)

	require.NoError(t, err)
	claims, ok := c.Get("user").(*models.JwtCustomClaims)
	require.True(t, ok)
	assert.Equal(t, uint(2), claims.UserID)
}

func TestJWTAuthMiddleware_MissingHeader(t *testing.T) {
	_, err := runMiddleware("")

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestJWTAuthMiddleware_MalformedHeader(t *testing.T) {
	_, err := runMiddleware("Token abc")

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestJWTAuthMiddleware_WrongSecret(t *testing.T) {
	token := signToken(t, "some-other-secret", 2)

	_, err := runMiddleware("Bearer " + token)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestJWTAuthMiddleware_ExpiredToken(t *testing.T) {
	claims := &models.JwtCustomClaims{
		UserID: 2,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("supersecretjwtkey"))
	require.NoError(t, err)

	_, mwErr := runMiddleware("Bearer " + token)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, mwErr, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}
