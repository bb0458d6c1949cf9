package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func protected(t *testing.T) http.Handler {
	t.Helper()
	return AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, _ := r.Context().Value(UserKey).(string)
		w.Write([]byte(user))
	}))
}

func signedToken(t *testing.T, secret string, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "admin",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	assert.NoError(t, err)
	return signed
}

func TestAuthMiddleware(t *testing.T) {
	viper.Set("jwt.secret_key", "test-secret")
	t.Cleanup(viper.Reset)
	t.Cleanup(func() { InitAuthMiddleware(nil) })

	t.Run("missing header", func(t *testing.T) {
		InitAuthMiddleware(nil)
		r := httptest.NewRequest("GET", "/transactions", nil)
		w := httptest.NewRecorder()

		protected(t).ServeHTTP(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		InitAuthMiddleware(nil)
		r := httptest.NewRequest("GET", "/transactions", nil)
		r.Header.Set("Authorization", "Token abc")
		w := httptest.NewRecorder()

		protected(t).ServeHTTP(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token passes and sets the user", func(t *testing.T) {
		InitAuthMiddleware(nil)
		token := signedToken(t, "test-secret", time.Now().Add(time.Hour))

		r := httptest.NewRequest("GET", "/transactions", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		protected(t).ServeHTTP(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "admin", w.Body.String())
	})

	t.Run("wrong signature", func(t *testing.T) {
		InitAuthMiddleware(nil)
		token := signedToken(t, "other-secret", time.Now().Add(time.Hour))

		r := httptest.NewRequest("GET", "/transactions", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		protected(t).ServeHTTP(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		InitAuthMiddleware(nil)
		token := signedToken(t, "test-secret", time.Now().Add(-time.Hour))

		r := httptest.NewRequest("GET", "/transactions", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		protected(t).ServeHTTP(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("revoked token", func(t *testing.T) {
		token := signedToken(t, "test-secret", time.Now().Add(time.Hour))

		redisClient, mock := redismock.NewClientMock()
		mock.ExpectExists("revoked:" + token).SetVal(1)
		InitAuthMiddleware(redisClient)

		r := httptest.NewRequest("GET", "/transactions", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		protected(t).ServeHTTP(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unrevoked token passes the redis check", func(t *testing.T) {
		token := signedToken(t, "test-secret", time.Now().Add(time.Hour))

		redisClient, mock := redismock.NewClientMock()
		mock.ExpectExists("revoked:" + token).SetVal(0)
		InitAuthMiddleware(redisClient)

		r := httptest.NewRequest("GET", "/transactions", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		protected(t).ServeHTTP(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
