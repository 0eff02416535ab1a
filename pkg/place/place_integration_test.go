package place_test

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/placelists/placelists/internal/middleware"
	"github.com/placelists/placelists/pkg/inttest"
	"github.com/placelists/placelists/pkg/model"
	"github.com/placelists/placelists/pkg/place"
	"github.com/placelists/placelists/pkg/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceHandler(t *testing.T) {
	t.Parallel()

	db := inttest.SetupDB(t)
	redis := inttest.SetupRedis(t)
	logger := slog.New(slog.DiscardHandler)

	userService := user.NewService(logger, user.NewRepository(db), redis)
	signer := inttest.SetupTokenSigner(t)
	authentication := middleware.NewAuthentication(logger, signer.PublicKey, userService)

	client := inttest.SetupHTTPServer(t, func(engine *gin.Engine) {
		place.Routes(engine, authentication, place.NewHandler(place.NewService(place.NewRepository(db))))
	})

	token := signer.Token(t, model.User{ID: 1, Name: "jane"})
	jsonHeader := inttest.WithHeader("Content-Type", "application/json")

	var park model.Place
	{
		t.Log("CreatePlace")

		client.PostJSON(t, "/places", strings.NewReader(`{"name": "Central Park", "latitude": 40.78, "longitude": -73.97}`), &park, inttest.WithAuthToken(token))

		assert.Equal(t, "central-park", park.Slug)
		assert.InDelta(t, 40.78, park.Latitude, 0.0001)
	}

	{
		t.Log("CreatePlaceAnonymous")

		client.Do(t, http.MethodPost, "/places", strings.NewReader(`{"name": "Somewhere"}`), http.StatusUnauthorized, jsonHeader)
	}

	{
		t.Log("CreatePlaceDuplicatedSlug")

		client.Do(t, http.MethodPost, "/places", strings.NewReader(`{"name": "central park"}`), http.StatusConflict, jsonHeader, inttest.WithAuthToken(token))
	}

	{
		t.Log("CreatePlaceInvalidLatitude")

		client.Do(t, http.MethodPost, "/places", strings.NewReader(`{"name": "North", "latitude": 91}`), http.StatusBadRequest, jsonHeader, inttest.WithAuthToken(token))
	}

	{
		t.Log("FindPlace")

		var found model.Place
		client.GetJSON(t, fmt.Sprintf("/places/%d", park.ID), &found)

		assert.Equal(t, park.ID, found.ID)
		assert.Equal(t, "Central Park", found.Name)
	}

	{
		t.Log("FindAllPlaces")

		var places []model.Place
		client.GetJSON(t, "/places", &places)

		require.Len(t, places, 1)
	}

	{
		t.Log("FindPlaceNotFound")

		client.Do(t, http.MethodGet, "/places/999", nil, http.StatusNotFound)
	}
}
