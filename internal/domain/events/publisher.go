package events

import "context"

// Publisher notifica a sistemas externos que se creó un evento.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, Event) error { return nil }

// NopPublisher descarta todo; es el default cuando no hay broker configurado.
func NopPublisher() Publisher { return nopPublisher{} }
