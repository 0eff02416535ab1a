// Mints an access token for local development. The private key has to match the public key the
// service is configured with (JWT_PUBLIC_KEY).
//
//	go run ./cmd/token -key private.pem -id 1 -name jane -role admin -groups 1,2
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/placelists/placelists/pkg/model"
	"github.com/placelists/placelists/pkg/token"
)

func main() {
	keyPath := flag.String("key", "", "Path to the PEM encoded RSA private key")
	id := flag.Uint("id", 0, "User id")
	name := flag.String("name", "", "User name")
	email := flag.String("email", "", "User email")
	role := flag.String("role", model.RoleUser, "User role, one of user, curator or admin")
	groups := flag.String("groups", "", "Comma separated ids of the groups the user is a member of")
	expiration := flag.Duration("expiration", 24*time.Hour, "How long the token is valid")
	flag.Parse()

	if *keyPath == "" || *id == 0 {
		fmt.Fprintf(os.Stderr, "missing -key or -id\n")
		flag.Usage()
		os.Exit(1)
	}

	logger := slog.Default()

	data, err := os.ReadFile(*keyPath)
	if err != nil {
		logger.Error("failed to read private key", "path", *keyPath, "error", err)
		os.Exit(1)
	}

	key, err := token.ParsePrivateKey(data)
	if err != nil {
		logger.Error("failed to parse private key", "error", err)
		os.Exit(1)
	}

	memberships, err := parseGroups(*groups)
	if err != nil {
		logger.Error("failed to parse groups", "error", err)
		os.Exit(1)
	}

	user := &model.User{
		ID:     *id,
		Name:   *name,
		Email:  *email,
		Role:   *role,
		Groups: memberships,
	}
	signed, err := token.GenerateAccessToken(user, key, *expiration)
	if err != nil {
		logger.Error("failed to generate token", "error", err)
		os.Exit(1)
	}

	fmt.Println(signed)
}

func parseGroups(s string) ([]model.Group, error) {
	if s == "" {
		return nil, nil
	}

	var groups []model.Group
	for _, field := range strings.Split(s, ",") {
		id, err := strconv.ParseUint(strings.TrimSpace(field), 10, 0)
		if err != nil {
			return nil, fmt.Errorf("invalid group id %q: %v", field, err)
		}
		groups = append(groups, model.Group{ID: uint(id)})
	}
	return groups, nil
}
