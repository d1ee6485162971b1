package redisstore

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftKey(t *testing.T) {
	assert.Equal(t, "animal-registry:draft:abc", draftKey("abc"))
}

func TestNewClient_FailsWithoutServer(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	// Puerto reservado sin servicio: el ping tiene que fallar y no devolver cliente.
	client, err := NewClient(ctx, "127.0.0.1:1", "", 0)
	require.Error(t, err)
	assert.Nil(t, client)
}

func TestDraftStore_PropagatesConnectionErrors(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	store := NewDraftStore(client, time.Minute)
	_, err := store.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis get draft")

	_, err = store.Take(context.Background(), "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis getdel draft")
}
