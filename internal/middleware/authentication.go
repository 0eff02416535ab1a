package middleware

import (
	"context"
	"crypto/rsa"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"

	"github.com/gin-gonic/gin"
	"github.com/placelists/placelists/internal/errdef"
	"github.com/placelists/placelists/pkg/model"
)

func NewAuthentication(logger *slog.Logger, publicKey *rsa.PublicKey, userSyncer userSyncer) AuthenticationMiddleware {
	return AuthenticationMiddleware{
		logger:     logger,
		publicKey:  publicKey,
		userSyncer: userSyncer,
	}
}

type userSyncer interface {
	Sync(ctx context.Context, user *model.User) error
}

// AuthenticationMiddleware authenticates requests using RS256 signed JWTs carrying the user in a
// "user" claim. Tokens are issued upstream; this service only verifies them.
type AuthenticationMiddleware struct {
	logger     *slog.Logger
	publicKey  *rsa.PublicKey
	userSyncer userSyncer
}

const accessTokenCookie = "accessToken"

// TokenAuthentication requires a valid token.
func (m AuthenticationMiddleware) TokenAuthentication(c *gin.Context) {
	m.authenticate(c)
}

// OptionalTokenAuthentication lets anonymous requests through. A token that is present must be
// valid though.
func (m AuthenticationMiddleware) OptionalTokenAuthentication(c *gin.Context) {
	if !hasToken(c.Request) {
		c.Next()
		return
	}

	m.authenticate(c)
}

func (m AuthenticationMiddleware) authenticate(c *gin.Context) {
	ctx := c.Request.Context()

	user, err := parseRequest(c.Request, m.publicKey)
	if err != nil {
		m.logger.InfoContext(ctx, "Token not valid", "error", err)
		_ = c.Error(errdef.NewUnauthorized("token not valid"))
		c.Abort()
		return
	}

	if err := m.userSyncer.Sync(ctx, user); err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}

	c.Set("user", user)
	c.Request = c.Request.WithContext(model.NewContextWithUser(ctx, user))
	c.Next()
}

func hasToken(request *http.Request) bool {
	if request.Header.Get("Authorization") != "" {
		return true
	}
	_, err := request.Cookie(accessTokenCookie)
	return err == nil
}

func parseRequest(request *http.Request, key *rsa.PublicKey) (*model.User, error) {
	token, err := jwt.ParseRequest(
		request,
		jwt.WithKey(jwa.RS256, key),
		jwt.WithHeaderKey("Authorization"),
		jwt.WithCookieKey(accessTokenCookie),
		jwt.WithValidate(true),
	)
	if err != nil {
		return nil, err
	}

	return extractUser(token)
}

func extractUser(token jwt.Token) (*model.User, error) {
	userData, ok := token.Get("user")
	if !ok {
		return nil, errors.New("user not found in claims")
	}

	bytes, err := json.Marshal(userData)
	if err != nil {
		return nil, err
	}

	user := &model.User{}
	if err := json.Unmarshal(bytes, user); err != nil {
		return nil, err
	}

	if user.ID == 0 {
		return nil, errors.New("user claim has no id")
	}
	if user.Role == "" {
		user.Role = model.RoleUser
	}

	return user, nil
}
