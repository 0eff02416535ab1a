package group_test

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/placelists/placelists/internal/middleware"
	"github.com/placelists/placelists/pkg/group"
	"github.com/placelists/placelists/pkg/inttest"
	"github.com/placelists/placelists/pkg/model"
	"github.com/placelists/placelists/pkg/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupHandler(t *testing.T) {
	t.Parallel()

	db := inttest.SetupDB(t)
	redis := inttest.SetupRedis(t)
	logger := slog.New(slog.DiscardHandler)

	userService := user.NewService(logger, user.NewRepository(db), redis)
	groupService := group.NewService(group.NewRepository(db), userService)
	signer := inttest.SetupTokenSigner(t)
	authentication := middleware.NewAuthentication(logger, signer.PublicKey, userService)
	authorization := middleware.NewAuthorization(logger)

	client := inttest.SetupHTTPServer(t, func(engine *gin.Engine) {
		group.Routes(engine, authentication, authorization, group.NewHandler(groupService))
		user.Routes(engine, authentication, user.NewHandler(userService))
	})

	adminToken := signer.Token(t, model.User{ID: 1, Name: "admin", Role: model.RoleAdmin})
	userToken := signer.Token(t, model.User{ID: 2, Name: "jane", Role: model.RoleUser})
	// sign in once so the users are known
	client.Get(t, "/users/me", inttest.WithAuthToken(adminToken))
	client.Get(t, "/users/me", inttest.WithAuthToken(userToken))

	var climbers model.Group
	{
		t.Log("CreateGroup")

		client.PostJSON(t, "/groups", strings.NewReader(`{"name": "climbers"}`), &climbers, inttest.WithAuthToken(adminToken))

		assert.Equal(t, "climbers", climbers.Name)
		assert.True(t, climbers.IsAdministeredBy(1))
	}

	{
		t.Log("CreateGroupWithAdministrator")

		var hikers model.Group
		client.PostJSON(t, "/groups", strings.NewReader(`{"name": "hikers", "administratorId": 2}`), &hikers, inttest.WithAuthToken(adminToken))

		assert.True(t, hikers.IsAdministeredBy(2))
	}

	{
		t.Log("CreateGroupDuplicated")

		client.Do(t, http.MethodPost, "/groups", strings.NewReader(`{"name": "climbers"}`), http.StatusConflict, inttest.WithHeader("Content-Type", "application/json"), inttest.WithAuthToken(adminToken))
	}

	{
		t.Log("CreateGroupAsUser")

		client.Do(t, http.MethodPost, "/groups", strings.NewReader(`{"name": "walkers"}`), http.StatusForbidden, inttest.WithHeader("Content-Type", "application/json"), inttest.WithAuthToken(userToken))
	}

	{
		t.Log("MembershipFromToken")

		memberToken := signer.Token(t, model.User{ID: 3, Name: "member", Groups: []model.Group{{ID: climbers.ID}}})

		var details model.Group
		client.GetJSON(t, fmt.Sprintf("/groups/%d", climbers.ID), &details, inttest.WithAuthToken(memberToken))
		require.Len(t, details.Users, 1)
		assert.Equal(t, uint(3), details.Users[0].ID)
		require.NotNil(t, details.Administrator)
		assert.Equal(t, "admin", details.Administrator.Name)
	}

	{
		t.Log("FindAllGroups")

		var groups []model.Group
		client.GetJSON(t, "/groups", &groups, inttest.WithAuthToken(userToken))

		require.Len(t, groups, 2)
		assert.Equal(t, "climbers", groups[0].Name)
		assert.Equal(t, "hikers", groups[1].Name)
	}

	{
		t.Log("FindGroupNotFound")

		client.Do(t, http.MethodGet, "/groups/999", nil, http.StatusNotFound, inttest.WithAuthToken(userToken))
	}
}
