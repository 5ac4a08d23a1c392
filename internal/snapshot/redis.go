package snapshot

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/school-scheduler/internal/config"
)

// StateKey é a chave fixa do blob de sessão.
const StateKey = "school-scheduler:state"

// ErrNotFound indica que nenhum estado foi salvo ainda.
var ErrNotFound = errors.New("snapshot: no saved state")

// Store guarda a sessão inteira como um blob JSON numa chave única,
// sem garantia transacional entre os mapas.
type Store interface {
	Load(ctx context.Context) (*State, error)
	Save(ctx context.Context, st *State) error
	Clear(ctx context.Context) error
}

func NewClient(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
}

type RedisStore struct {
	client *redis.Client
	key    string
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, key: StateKey}
}

func (s *RedisStore) Load(ctx context.Context) (*State, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

func (s *RedisStore) Save(ctx context.Context, st *State) error {
	st.SavedAt = time.Now()
	data, err := st.Encode()
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key, data, 0).Err()
}

func (s *RedisStore) Clear(ctx context.Context) error {
	return s.client.Del(ctx, s.key).Err()
}

var _ Store = (*RedisStore)(nil)
