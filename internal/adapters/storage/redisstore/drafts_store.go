package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"animal-registry/internal/domain/drafts"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "animal-registry:draft:"

// DraftStore guarda las sesiones del diálogo como JSON con TTL; cada Save
// renueva el vencimiento.
type DraftStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewDraftStore(client *redis.Client, ttl time.Duration) *DraftStore {
	return &DraftStore{client: client, ttl: ttl}
}

func draftKey(id string) string {
	return keyPrefix + id
}

func (s *DraftStore) Save(ctx context.Context, sess drafts.Session) error {
	b, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal draft: %w", err)
	}
	if err := s.client.Set(ctx, draftKey(sess.ID), b, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set draft: %w", err)
	}
	return nil
}

func (s *DraftStore) Get(ctx context.Context, id string) (drafts.Session, error) {
	b, err := s.client.Get(ctx, draftKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return drafts.Session{}, drafts.ErrNotFound
		}
		return drafts.Session{}, fmt.Errorf("redis get draft: %w", err)
	}
	return decodeSession(b)
}

// Take usa GETDEL: redis garantiza que un solo cliente se lleva la clave.
func (s *DraftStore) Take(ctx context.Context, id string) (drafts.Session, error) {
	b, err := s.client.GetDel(ctx, draftKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return drafts.Session{}, drafts.ErrNotFound
		}
		return drafts.Session{}, fmt.Errorf("redis getdel draft: %w", err)
	}
	return decodeSession(b)
}

func decodeSession(b []byte) (drafts.Session, error) {
	var sess drafts.Session
	if err := json.Unmarshal(b, &sess); err != nil {
		return drafts.Session{}, fmt.Errorf("unmarshal draft: %w", err)
	}
	return sess, nil
}

func (s *DraftStore) Delete(ctx context.Context, id string) error {
	n, err := s.client.Del(ctx, draftKey(id)).Result()
	if err != nil {
		return fmt.Errorf("redis del draft: %w", err)
	}
	if n == 0 {
		return drafts.ErrNotFound
	}
	return nil
}

// NewClient arma el cliente y verifica la conexión.
func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}
