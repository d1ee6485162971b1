package kafkabus

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"animal-registry/internal/domain/events"

	"github.com/segmentio/kafka-go"
)

// messageWriter es la parte de *kafka.Writer que usamos; permite testear sin broker.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher publica cada evento creado en un topic, con el id del animal como
// key para que los eventos de un mismo animal queden ordenados en la partición.
type Publisher struct {
	writer messageWriter
	topic  string
}

func NewPublisher(brokers []string, topic string) *Publisher {
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 10 * time.Millisecond,
	}
	return &Publisher{writer: w, topic: topic}
}

// eventMessage es el payload publicado; mismo formato que la API.
type eventMessage struct {
	Kind  string               `json:"kind"`
	Event events.EventResponse `json:"event"`
}

func encode(e events.Event) (kafka.Message, error) {
	payload, err := json.Marshal(eventMessage{
		Kind:  "animal_event.created",
		Event: events.ToResponse(e),
	})
	if err != nil {
		return kafka.Message{}, fmt.Errorf("marshal event: %w", err)
	}
	return kafka.Message{
		Key:   []byte(strconv.FormatInt(e.Animal, 10)),
		Value: payload,
	}, nil
}

func (p *Publisher) Publish(ctx context.Context, e events.Event) error {
	msg, err := encode(e)
	if err != nil {
		return err
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka write %s: %w", p.topic, err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
