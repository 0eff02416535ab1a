package user_test

import (
	"log/slog"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/placelists/placelists/internal/middleware"
	"github.com/placelists/placelists/pkg/inttest"
	"github.com/placelists/placelists/pkg/model"
	"github.com/placelists/placelists/pkg/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserHandler(t *testing.T) {
	t.Parallel()

	db := inttest.SetupDB(t)
	redis := inttest.SetupRedis(t)
	logger := slog.New(slog.DiscardHandler)

	group := &model.Group{Name: "climbers"}
	require.NoError(t, db.Create(group).Error)

	userService := user.NewService(logger, user.NewRepository(db), redis)
	signer := inttest.SetupTokenSigner(t)
	authentication := middleware.NewAuthentication(logger, signer.PublicKey, userService)

	client := inttest.SetupHTTPServer(t, func(engine *gin.Engine) {
		user.Routes(engine, authentication, user.NewHandler(userService))
	})

	{
		t.Log("MeWithoutToken")

		client.Do(t, http.MethodGet, "/users/me", nil, http.StatusUnauthorized)
	}

	{
		t.Log("MeSyncsTokenIdentity")

		token := signer.Token(t, model.User{
			ID:     42,
			Name:   "Jane",
			Email:  "jane@example.org",
			Role:   model.RoleCurator,
			Groups: []model.Group{{ID: group.ID}, {ID: 9999}},
		})

		var me model.User
		client.GetJSON(t, "/users/me", &me, inttest.WithAuthToken(token))

		assert.Equal(t, uint(42), me.ID)
		assert.Equal(t, "Jane", me.Name)
		assert.Equal(t, model.RoleCurator, me.Role)
		require.Len(t, me.Groups, 1, "unknown groups are not stored")
		assert.Equal(t, "climbers", me.Groups[0].Name)
	}

	{
		t.Log("MeAfterRoleChange")

		token := signer.Token(t, model.User{ID: 42, Name: "Jane", Email: "jane@example.org", Role: model.RoleUser})

		var me model.User
		client.GetJSON(t, "/users/me", &me, inttest.WithAuthToken(token))

		assert.Equal(t, model.RoleUser, me.Role)
		assert.Empty(t, me.Groups)
	}
}
