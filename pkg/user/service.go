package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-redis/redis"
	"github.com/placelists/placelists/pkg/model"
	"golang.org/x/exp/slices"
)

// syncTTL is how long a synced identity is trusted before it is written to the database again.
const syncTTL = time.Hour

//goland:noinspection GoExportedFuncWithUnexportedType
func NewService(logger *slog.Logger, repository userRepository, cache cache) *Service {
	return &Service{
		logger:     logger,
		repository: repository,
		cache:      cache,
	}
}

type userRepository interface {
	upsert(ctx context.Context, user *model.User) error
	findById(ctx context.Context, id uint) (*model.User, error)
}

// cache is implemented by *redis.Client.
type cache interface {
	Get(key string) *redis.StringCmd
	Set(key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

type Service struct {
	logger     *slog.Logger
	repository userRepository
	cache      cache
}

// Sync makes sure the identity of an authenticated user is stored so other entities can reference
// and populate it. The database is skipped if the same identity was synced within the last hour.
func (s Service) Sync(ctx context.Context, user *model.User) error {
	key := cacheKey(user.ID)
	fingerprint := identityFingerprint(user)

	cached, err := s.cache.Get(key).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		s.logger.WarnContext(ctx, "Failed to read user sync cache", "userId", user.ID, "error", err)
	}
	if err == nil && cached == fingerprint {
		return nil
	}

	if err := s.repository.upsert(ctx, user); err != nil {
		return err
	}

	if err := s.cache.Set(key, fingerprint, syncTTL).Err(); err != nil {
		s.logger.WarnContext(ctx, "Failed to write user sync cache", "userId", user.ID, "error", err)
	}
	return nil
}

func (s Service) FindById(ctx context.Context, id uint) (*model.User, error) {
	return s.repository.findById(ctx, id)
}

func cacheKey(userID uint) string {
	return fmt.Sprintf("user:%d:synced", userID)
}

// identityFingerprint changes whenever a claim we store changes.
func identityFingerprint(user *model.User) string {
	ids := groupIDs(user.Groups)
	slices.Sort(ids)

	groups := make([]string, len(ids))
	for i, id := range ids {
		groups[i] = fmt.Sprint(id)
	}

	return strings.Join([]string{user.Name, user.Email, user.Role, strings.Join(groups, ",")}, "|")
}
