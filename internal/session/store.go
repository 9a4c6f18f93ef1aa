package session

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ArvinAIEngineer/mdm/internal/models"
)

// Session is the persisted flow state for one client.
type Session struct {
	ID        string                 `json:"id"`
	State     State                  `json:"state"`
	Fields    models.ExtractedRecord `json:"fields"`
	UpdatedAt time.Time              `json:"updated_at"`
}

const sessionTTL = 30 * time.Minute

// ErrSessionNotFound is returned when a session id is unknown or expired.
var ErrSessionNotFound = errors.New("session not found")

// Store keeps session state in redis, so the flow survives restarts and can
// be served by any instance.
type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

// NewClient builds a redis client from REDIS_ADDR / REDIS_PASSWORD, with a
// localhost default.
func NewClient() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
}

func key(id string) string {
	return "session:" + id
}

func (s *Store) Save(ctx context.Context, sess Session) error {
	sess.UpdatedAt = time.Now()
	b, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, key(sess.ID), b, sessionTTL).Err()
}

func (s *Store) Load(ctx context.Context, id string) (Session, error) {
	var sess Session
	b, err := s.rdb.Get(ctx, key(id)).Bytes()
	if err == redis.Nil {
		return sess, ErrSessionNotFound
	}
	if err != nil {
		return sess, err
	}
	if err := json.Unmarshal(b, &sess); err != nil {
		return sess, err
	}
	return sess, nil
}
