package postgres

import (
	"context"
	"database/sql"
	"errors"

	"animal-registry/internal/domain/events"
)

type EventsRepo struct {
	db *sql.DB
}

func NewEventsRepo(db *sql.DB) *EventsRepo {
	return &EventsRepo{db: db}
}

const eventColumns = `
	id, animal_id,
	type_index, type_label, category,
	expenses, comments,
	date_time
`

func (r *EventsRepo) Create(ctx context.Context, e events.Event) (events.Event, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO animal_events (
			animal_id,
			type_index, type_label, category,
			expenses, comments,
			date_time
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id
	`,
		e.Animal,
		e.Type.Index,
		e.Type.Label,
		e.Category,
		e.Expenses,
		e.Comments,
		dateTimeArg(e.DateTime),
	).Scan(&e.ID)
	if err != nil {
		return events.Event{}, err
	}
	return e, nil
}

func (r *EventsRepo) GetByID(ctx context.Context, id int64) (events.Event, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+eventColumns+` FROM animal_events WHERE id = $1`, id)

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return events.Event{}, events.ErrNotFound
		}
		return events.Event{}, err
	}
	return e, nil
}

// ListByAnimal devuelve en orden de alta; el filtro por categoría y el orden
// por fecha los aplica el dominio (Timeline).
func (r *EventsRepo) ListByAnimal(ctx context.Context, animalID int64) ([]events.Event, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+eventColumns+`
		FROM animal_events
		WHERE animal_id = $1
		ORDER BY id ASC
	`, animalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]events.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func scanEvent(row rowScanner) (events.Event, error) {
	var e events.Event
	var dt sql.NullInt64

	if err := row.Scan(
		&e.ID,
		&e.Animal,
		&e.Type.Index,
		&e.Type.Label,
		&e.Category,
		&e.Expenses,
		&e.Comments,
		&dt,
	); err != nil {
		return events.Event{}, err
	}

	if dt.Valid {
		e.DateTime = events.NewTimestamp(dt.Int64)
	}
	return e, nil
}

func dateTimeArg(t events.Timestamp) sql.NullInt64 {
	ms, ok := t.Millis()
	return sql.NullInt64{Int64: ms, Valid: ok}
}
