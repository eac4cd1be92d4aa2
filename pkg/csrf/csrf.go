package csrf

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"Atrium/config"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrTokenInvalid = errors.New("invalid csrf token")

// Manager mints one anti-forgery token per session and checks it on
// state-changing requests. Tokens live in redis with the session's TTL.
type Manager struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewManager(conf *config.Config, rdb *redis.Client) *Manager {
	return &Manager{
		rdb: rdb,
		ttl: conf.Jwt.Expire(),
	}
}

func key(sessionID string) string {
	return fmt.Sprintf("csrf:%s", sessionID)
}

// Issue replaces any previous token for the session.
func (m *Manager) Issue(ctx context.Context, sessionID string) (string, error) {
	token := uuid.NewString()
	if err := m.rdb.Set(ctx, key(sessionID), token, m.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

// Token returns the session's current token, minting one if the session
// has none yet.
func (m *Manager) Token(ctx context.Context, sessionID string) (string, error) {
	token, err := m.rdb.Get(ctx, key(sessionID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return m.Issue(ctx, sessionID)
		}
		return "", err
	}
	return token, nil
}

func (m *Manager) Validate(ctx context.Context, sessionID, token string) error {
	if sessionID == "" || token == "" {
		return ErrTokenInvalid
	}
	stored, err := m.rdb.Get(ctx, key(sessionID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrTokenInvalid
		}
		return err
	}
	if subtle.ConstantTimeCompare([]byte(stored), []byte(token)) != 1 {
		return ErrTokenInvalid
	}
	return nil
}

func (m *Manager) Revoke(ctx context.Context, sessionID string) error {
	return m.rdb.Del(ctx, key(sessionID)).Err()
}
