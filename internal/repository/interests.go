package repository

import (
	"context"
	"database/sql"

	"gatherly/internal/database"
	"gatherly/internal/models"
)

type InterestRepository struct {
	db *database.DB
}

func NewInterestRepository(db *database.DB) *InterestRepository {
	return &InterestRepository{db: db}
}

// Upsert inserts or updates the single interest row for (userID, eventID).
// ON CONFLICT makes the write atomic: a concurrent duplicate becomes a
// last-write-wins update instead of an error. The returned flag reports
// whether a new row was inserted.
func (r *InterestRepository) Upsert(ctx context.Context, userID, eventID int64, level string) (inserted bool, err error) {
	query := `
		INSERT INTO user_interests (user_id, event_id, interest_level)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, event_id)
		DO UPDATE SET interest_level = EXCLUDED.interest_level, updated_at = NOW()
		RETURNING created_at, updated_at`

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, userID, eventID, level).
		Scan(&createdAt, &updatedAt)
	if err != nil {
		return false, err
	}

	// Fresh rows get created_at and updated_at from the same statement clock.
	return createdAt.Time.Equal(updatedAt.Time), nil
}

func (r *InterestRepository) Get(ctx context.Context, userID, eventID int64) (*models.UserInterest, error) {
	interest := &models.UserInterest{}
	query := `
		SELECT id, user_id, event_id, interest_level, created_at, updated_at
		FROM user_interests
		WHERE user_id = $1 AND event_id = $2`

	err := r.db.QueryRowContext(ctx, query, userID, eventID).Scan(
		&interest.ID,
		&interest.UserID,
		&interest.EventID,
		&interest.InterestLevel,
		&interest.CreatedAt,
		&interest.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return interest, err
}

// Delete removes the interest row. Deleting an absent row is not an error.
func (r *InterestRepository) Delete(ctx context.Context, userID, eventID int64) error {
	query := `DELETE FROM user_interests WHERE user_id = $1 AND event_id = $2`
	_, err := r.db.ExecContext(ctx, query, userID, eventID)
	return err
}

func (r *InterestRepository) ListByUser(ctx context.Context, userID int64) ([]models.InterestWithEvent, error) {
	query := `
		SELECT ui.id, ui.user_id, ui.event_id, ui.interest_level,
		       ui.created_at, ui.updated_at,
		       e.event_name, e.event_date::text, e.event_time, e.location, e.photo_url
		FROM user_interests ui
		JOIN events e ON ui.event_id = e.id
		WHERE ui.user_id = $1
		ORDER BY ui.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	interests := []models.InterestWithEvent{}
	for rows.Next() {
		var interest models.InterestWithEvent
		err := rows.Scan(
			&interest.ID,
			&interest.UserID,
			&interest.EventID,
			&interest.InterestLevel,
			&interest.CreatedAt,
			&interest.UpdatedAt,
			&interest.EventName,
			&interest.EventDate,
			&interest.EventTime,
			&interest.Location,
			&interest.PhotoURL,
		)
		if err != nil {
			return nil, err
		}
		interests = append(interests, interest)
	}

	return interests, rows.Err()
}
