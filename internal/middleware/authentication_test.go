package middleware

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/placelists/placelists/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthenticationMiddleware(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	valid := signToken(t, key, time.Hour, map[string]any{"id": 7, "name": "jane", "groups": []map[string]any{{"id": 3}}})

	t.Run("TokenAuthentication", func(t *testing.T) {
		syncer := &mockUserSyncer{}
		syncer.
			On("Sync", mock.MatchedBy(func(u *model.User) bool {
				return u.ID == 7 && u.Role == model.RoleUser && u.IsMemberOf(3)
			})).
			Return(nil)
		m := NewAuthentication(slog.New(slog.DiscardHandler), &key.PublicKey, syncer)

		w := serve(m.TokenAuthentication, withBearer(valid))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "7", w.Body.String())
		syncer.AssertExpectations(t)
	})

	t.Run("TokenAuthenticationCookie", func(t *testing.T) {
		syncer := &mockUserSyncer{}
		syncer.On("Sync", mock.Anything).Return(nil)
		m := NewAuthentication(slog.New(slog.DiscardHandler), &key.PublicKey, syncer)

		w := serve(m.TokenAuthentication, func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: accessTokenCookie, Value: valid})
		})

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("TokenAuthenticationWithoutToken", func(t *testing.T) {
		m := NewAuthentication(slog.New(slog.DiscardHandler), &key.PublicKey, &mockUserSyncer{})

		w := serve(m.TokenAuthentication, func(*http.Request) {})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		m := NewAuthentication(slog.New(slog.DiscardHandler), &key.PublicKey, &mockUserSyncer{})
		expired := signToken(t, key, -time.Hour, map[string]any{"id": 7})

		w := serve(m.TokenAuthentication, withBearer(expired))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("TokenSignedByOtherKey", func(t *testing.T) {
		other, err := rsa.GenerateKey(rand.Reader, 2048)
		require.NoError(t, err)
		m := NewAuthentication(slog.New(slog.DiscardHandler), &key.PublicKey, &mockUserSyncer{})

		w := serve(m.TokenAuthentication, withBearer(signToken(t, other, time.Hour, map[string]any{"id": 7})))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("UserClaimWithoutID", func(t *testing.T) {
		m := NewAuthentication(slog.New(slog.DiscardHandler), &key.PublicKey, &mockUserSyncer{})

		w := serve(m.TokenAuthentication, withBearer(signToken(t, key, time.Hour, map[string]any{"name": "nobody"})))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("SyncFails", func(t *testing.T) {
		syncer := &mockUserSyncer{}
		syncer.On("Sync", mock.Anything).Return(errors.New("database down"))
		m := NewAuthentication(slog.New(slog.DiscardHandler), &key.PublicKey, syncer)

		w := serve(m.TokenAuthentication, withBearer(valid))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("OptionalTokenAuthenticationAnonymous", func(t *testing.T) {
		m := NewAuthentication(slog.New(slog.DiscardHandler), &key.PublicKey, &mockUserSyncer{})

		w := serve(m.OptionalTokenAuthentication, func(*http.Request) {})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "anonymous", w.Body.String())
	})

	t.Run("OptionalTokenAuthenticationInvalidToken", func(t *testing.T) {
		m := NewAuthentication(slog.New(slog.DiscardHandler), &key.PublicKey, &mockUserSyncer{})

		w := serve(m.OptionalTokenAuthentication, withBearer("garbage"))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func signToken(t *testing.T, key *rsa.PrivateKey, validFor time.Duration, user map[string]any) string {
	t.Helper()

	token, err := jwt.NewBuilder().
		IssuedAt(time.Now().Add(-2*time.Hour)).
		Expiration(time.Now().Add(validFor)).
		Claim("user", user).
		Build()
	require.NoError(t, err)

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.RS256, key))
	require.NoError(t, err)
	return string(signed)
}

func withBearer(token string) func(*http.Request) {
	return func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+token)
	}
}

// serve runs the authentication middleware in front of a handler responding with the id of the
// authenticated user.
func serve(authenticate gin.HandlerFunc, prepare func(*http.Request)) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	_, engine := gin.CreateTestContext(w)
	engine.Use(ErrorHandler())
	engine.GET("/", authenticate, func(c *gin.Context) {
		user, ok := model.GetUserFromContext(c.Request.Context())
		if !ok {
			c.String(http.StatusOK, "anonymous")
			return
		}
		c.String(http.StatusOK, "%d", user.ID)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	prepare(req)
	engine.ServeHTTP(w, req)
	return w
}

type mockUserSyncer struct{ mock.Mock }

func (m *mockUserSyncer) Sync(ctx context.Context, user *model.User) error {
	return m.Called(user).Error(0)
}
