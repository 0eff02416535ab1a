package inttest

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/placelists/placelists/pkg/model"
	"github.com/placelists/placelists/pkg/token"
	"github.com/stretchr/testify/require"
)

// TokenSigner issues access tokens the way the upstream identity provider does. Pass PublicKey to
// the authentication middleware under test.
type TokenSigner struct {
	privateKey *rsa.PrivateKey
	PublicKey  *rsa.PublicKey
}

// SetupTokenSigner creates a signer backed by a freshly generated RSA key.
func SetupTokenSigner(t *testing.T) *TokenSigner {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err, "failed to generate RSA key")

	return &TokenSigner{privateKey: key, PublicKey: &key.PublicKey}
}

// Token returns a signed token carrying given user in its "user" claim.
func (s *TokenSigner) Token(t *testing.T, user model.User) string {
	t.Helper()

	signed, err := token.GenerateAccessToken(&user, s.privateKey, time.Hour)
	require.NoError(t, err, "failed to generate token")
	return signed
}
