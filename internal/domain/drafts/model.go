package drafts

import (
	"context"
	"time"

	"animal-registry/internal/domain/eventform"
)

// Session es un diálogo de creación abierto: el borrador y a quién pertenece.
// Se borra al cancelar o al crear el evento.
type Session struct {
	ID          string          `json:"id"`
	AnimalID    int64           `json:"animal_id"`
	OwnerUserID string          `json:"owner_user_id"`
	Draft       eventform.Draft `json:"draft"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Store guarda sesiones. Get devuelve ErrNotFound si no existe o expiró.
// Take lee y borra en un solo paso: de dos llamadas concurrentes sólo una
// recibe la sesión, la otra ErrNotFound.
type Store interface {
	Save(ctx context.Context, s Session) error
	Get(ctx context.Context, id string) (Session, error)
	Take(ctx context.Context, id string) (Session, error)
	Delete(ctx context.Context, id string) error
}
