package kafkabus

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"animal-registry/internal/domain/events"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

func TestPublisher_KeysByAnimal(t *testing.T) {
	w := &fakeWriter{}
	p := &Publisher{writer: w, topic: "animal-events"}

	err := p.Publish(context.Background(), events.Event{
		ID:       5,
		Animal:   12,
		Type:     events.Type{Index: 9, Label: "Vakcinavimas"},
		Category: "HEALTH",
		Expenses: 20,
		Comments: "rabies",
		DateTime: events.NewTimestamp(1700000000000),
	})
	require.NoError(t, err)
	require.Len(t, w.msgs, 1)

	assert.Equal(t, "12", string(w.msgs[0].Key))

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &body))
	assert.Equal(t, "animal_event.created", body["kind"])
	ev := body["event"].(map[string]any)
	assert.EqualValues(t, 5, ev["id"])
	assert.EqualValues(t, 1700000000000, ev["dateTime"])
}

func TestPublisher_WrapsWriteError(t *testing.T) {
	boom := errors.New("no brokers")
	p := &Publisher{writer: &fakeWriter{err: boom}, topic: "animal-events"}

	err := p.Publish(context.Background(), events.Event{Animal: 1})
	assert.ErrorIs(t, err, boom)
}
