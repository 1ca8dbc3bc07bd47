package repository

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"gatherly/internal/database"
	"gatherly/internal/models"
)

type EventRepository struct {
	db *database.DB
}

func NewEventRepository(db *database.DB) *EventRepository {
	return &EventRepository{db: db}
}

// bookedSubquery derives the attendee count from current interest rows.
// The count is never stored.
const bookedSubquery = `(SELECT COUNT(*) FROM user_interests ui
		WHERE ui.event_id = e.id AND ui.interest_level = 'going')`

const eventListColumns = `
	e.id, e.event_name, e.event_category, e.event_date::text, e.event_time,
	e.location, e.ticket_price::text, e.capacity, e.photo_url, e.organizer_id,
	u.name AS organizer_name, ` + bookedSubquery + ` AS booked,
	e.created_at, e.updated_at`

func scanEventRows(rows *sql.Rows) ([]models.Event, error) {
	events := []models.Event{}
	for rows.Next() {
		var event models.Event
		err := rows.Scan(
			&event.ID,
			&event.EventName,
			&event.EventCategory,
			&event.EventDate,
			&event.EventTime,
			&event.Location,
			&event.TicketPrice,
			&event.Capacity,
			&event.PhotoURL,
			&event.OrganizerID,
			&event.OrganizerName,
			&event.Booked,
			&event.CreatedAt,
			&event.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	query := `
		INSERT INTO events (event_name, event_category, event_date, event_time,
		                    location, ticket_price, capacity, photo_url, organizer_id)
		VALUES ($1, $2, $3::date, $4, $5, $6::numeric, $7, $8, $9)
		RETURNING id, created_at, updated_at`

	return r.db.QueryRowContext(ctx, query,
		event.EventName,
		event.EventCategory,
		event.EventDate,
		event.EventTime,
		event.Location,
		event.TicketPrice,
		event.Capacity,
		event.PhotoURL,
		event.OrganizerID,
	).Scan(&event.ID, &event.CreatedAt, &event.UpdatedAt)
}

func (r *EventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	query := `
		SELECT ` + eventListColumns + `
		FROM events e
		LEFT JOIN users u ON e.organizer_id = u.id
		WHERE e.id = $1`

	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events, err := scanEventRows(rows)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, nil
	}
	return &events[0], nil
}

// GetByIDForOrganizer returns the event only when organizerID owns it.
func (r *EventRepository) GetByIDForOrganizer(ctx context.Context, id, organizerID int64) (*models.Event, error) {
	event := &models.Event{}
	query := `
		SELECT id, event_name, event_category, event_date::text, event_time,
		       location, ticket_price::text, capacity, photo_url, organizer_id,
		       created_at, updated_at
		FROM events
		WHERE id = $1 AND organizer_id = $2`

	err := r.db.QueryRowContext(ctx, query, id, organizerID).Scan(
		&event.ID,
		&event.EventName,
		&event.EventCategory,
		&event.EventDate,
		&event.EventTime,
		&event.Location,
		&event.TicketPrice,
		&event.Capacity,
		&event.PhotoURL,
		&event.OrganizerID,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return event, err
}

// List returns all events, optionally filtered by a name/category/location
// match, newest event date first.
func (r *EventRepository) List(ctx context.Context, search string) ([]models.Event, error) {
	query := `
		SELECT ` + eventListColumns + `
		FROM events e
		LEFT JOIN users u ON e.organizer_id = u.id
		WHERE ($1 = '' OR e.event_name ILIKE '%' || $1 || '%'
		       OR e.event_category ILIKE '%' || $1 || '%'
		       OR e.location ILIKE '%' || $1 || '%')
		ORDER BY e.event_date DESC, e.event_time DESC`

	rows, err := r.db.QueryContext(ctx, query, search)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEventRows(rows)
}

// ListByIDs returns the given events in no particular order; callers that
// need a ranking (search results) reorder by their id list.
func (r *EventRepository) ListByIDs(ctx context.Context, ids []int64) ([]models.Event, error) {
	query := `
		SELECT ` + eventListColumns + `
		FROM events e
		LEFT JOIN users u ON e.organizer_id = u.id
		WHERE e.id = ANY($1)`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEventRows(rows)
}

func (r *EventRepository) ListByOrganizer(ctx context.Context, organizerID int64) ([]models.Event, error) {
	query := `
		SELECT ` + eventListColumns + `
		FROM events e
		LEFT JOIN users u ON e.organizer_id = u.id
		WHERE e.organizer_id = $1
		ORDER BY e.event_date DESC, e.event_time DESC`

	rows, err := r.db.QueryContext(ctx, query, organizerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEventRows(rows)
}

func (r *EventRepository) Update(ctx context.Context, event *models.Event) error {
	query := `
		UPDATE events
		SET event_name = $1, event_category = $2, event_date = $3::date,
		    event_time = $4, location = $5, ticket_price = $6::numeric,
		    capacity = $7, updated_at = NOW()
		WHERE id = $8`

	_, err := r.db.ExecContext(ctx, query,
		event.EventName,
		event.EventCategory,
		event.EventDate,
		event.EventTime,
		event.Location,
		event.TicketPrice,
		event.Capacity,
		event.ID,
	)
	return err
}

func (r *EventRepository) UpdatePhoto(ctx context.Context, id int64, photoURL *string) error {
	query := `UPDATE events SET photo_url = $1, updated_at = NOW() WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, photoURL, id)
	return err
}

// Delete removes the event; interests and payments cascade at the schema level.
func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	return err
}

// TicketPriceMatch checks amount against the event's current ticket price.
// The comparison happens in Postgres numeric space so "100" equals "100.00"
// and no float rounding is involved.
func (r *EventRepository) TicketPriceMatch(ctx context.Context, eventID int64, amount string) (price string, match, found bool, err error) {
	query := `SELECT ticket_price::text, ticket_price = $2::numeric FROM events WHERE id = $1`
	err = r.db.QueryRowContext(ctx, query, eventID, amount).Scan(&price, &match)
	if err == sql.ErrNoRows {
		return "", false, false, nil
	}
	if err != nil {
		return "", false, false, err
	}
	return price, match, true, nil
}
