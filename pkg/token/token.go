// Package token issues access tokens in the format the authentication middleware verifies. Tokens
// are normally issued by the identity provider. This package serves development and tests.
package token

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/placelists/placelists/pkg/model"
)

// GenerateAccessToken returns an RS256 signed token carrying the user in its "user" claim.
func GenerateAccessToken(user *model.User, key *rsa.PrivateKey, expiration time.Duration) (string, error) {
	now := time.Now()

	token, err := jwt.NewBuilder().
		IssuedAt(now).
		Expiration(now.Add(expiration)).
		Claim("user", user).
		Build()
	if err != nil {
		return "", fmt.Errorf("failed to build token: %v", err)
	}

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.RS256, key))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %v", err)
	}

	return string(signed), nil
}

// ParsePrivateKey parses a PEM encoded RSA private key in PKCS #1 or PKCS #8 form.
func ParsePrivateKey(data []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, errors.New("failed to decode PEM block containing the private key")
	}

	if key, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return key, nil
	}

	key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %v", err)
	}

	rsaKey, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("private key is of type %T, want RSA", key)
	}
	return rsaKey, nil
}
