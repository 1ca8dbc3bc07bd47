package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"

	"gatherly/internal/database"
	"gatherly/internal/models"
)

// AnalyticsRepository holds the read-only aggregation queries behind the
// organizer dashboards. Everything is recomputed from current rows on
// every call; no derived value is stored or cached.
type AnalyticsRepository struct {
	db *database.DB
}

func NewAnalyticsRepository(db *database.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

// InterestCounts groups an event's interest rows by level.
type InterestCounts struct {
	Interested    int64
	NotInterested int64
	Going         int64
}

// RecentItem is one entry of an organizer's activity streams.
type RecentItem struct {
	EventName string
	Level     string
	Amount    string
	Status    string
	CreatedAt time.Time
}

// OwnedEvents lists the organizer's events with just the fields the
// overview needs.
func (r *AnalyticsRepository) OwnedEvents(ctx context.Context, organizerID int64) ([]models.EventOverview, error) {
	query := `
		SELECT id, event_name, ticket_price::text
		FROM events
		WHERE organizer_id = $1
		ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, organizerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []models.EventOverview{}
	for rows.Next() {
		var e models.EventOverview
		if err := rows.Scan(&e.EventID, &e.EventName, &e.TicketPrice); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// InterestCountsByEvent returns per-event interest counts grouped by level.
// Events without interest rows are simply absent from the map.
func (r *AnalyticsRepository) InterestCountsByEvent(ctx context.Context, eventIDs []int64) (map[int64]InterestCounts, error) {
	query := `
		SELECT event_id,
		       SUM(CASE WHEN interest_level = 'interested' THEN 1 ELSE 0 END),
		       SUM(CASE WHEN interest_level = 'not_interested' THEN 1 ELSE 0 END),
		       SUM(CASE WHEN interest_level = 'going' THEN 1 ELSE 0 END)
		FROM user_interests
		WHERE event_id = ANY($1)
		GROUP BY event_id`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(eventIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[int64]InterestCounts)
	for rows.Next() {
		var eventID int64
		var c InterestCounts
		if err := rows.Scan(&eventID, &c.Interested, &c.NotInterested, &c.Going); err != nil {
			return nil, err
		}
		counts[eventID] = c
	}
	return counts, rows.Err()
}

// VerifiedRevenueByEvent sums verified payment amounts per event.
// Pending and rejected payments never count as revenue.
func (r *AnalyticsRepository) VerifiedRevenueByEvent(ctx context.Context, eventIDs []int64) (map[int64]float64, error) {
	query := `
		SELECT event_id, SUM(amount)::float8
		FROM payments
		WHERE event_id = ANY($1) AND payment_status = 'verified'
		GROUP BY event_id`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(eventIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	revenue := make(map[int64]float64)
	for rows.Next() {
		var eventID int64
		var sum float64
		if err := rows.Scan(&eventID, &sum); err != nil {
			return nil, err
		}
		revenue[eventID] = sum
	}
	return revenue, rows.Err()
}

// AttendeeCounts counts 'going' interests per owned event, most attended
// first. The filtered LEFT JOIN keeps events with zero attendees.
func (r *AnalyticsRepository) AttendeeCounts(ctx context.Context, organizerID int64) ([]models.EventAttendance, error) {
	query := `
		SELECT e.id, e.event_name, COUNT(ui.user_id)
		FROM events e
		LEFT JOIN user_interests ui
		  ON e.id = ui.event_id AND ui.interest_level = 'going'
		WHERE e.organizer_id = $1
		GROUP BY e.id, e.event_name
		ORDER BY COUNT(ui.user_id) DESC`

	rows, err := r.db.QueryContext(ctx, query, organizerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []models.EventAttendance{}
	for rows.Next() {
		var e models.EventAttendance
		if err := rows.Scan(&e.ID, &e.EventName, &e.Attendees); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// InterestedCounts counts 'interested' interests per owned event,
// descending.
func (r *AnalyticsRepository) InterestedCounts(ctx context.Context, organizerID int64) ([]models.EventInterestCount, error) {
	query := `
		SELECT e.id, e.event_name, COUNT(ui.user_id)
		FROM events e
		LEFT JOIN user_interests ui
		  ON e.id = ui.event_id AND ui.interest_level = 'interested'
		WHERE e.organizer_id = $1
		GROUP BY e.id, e.event_name
		ORDER BY COUNT(ui.user_id) DESC`

	rows, err := r.db.QueryContext(ctx, query, organizerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []models.EventInterestCount{}
	for rows.Next() {
		var e models.EventInterestCount
		if err := rows.Scan(&e.ID, &e.EventName, &e.InterestedCount); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// Participants lists every interest row against the organizer's events,
// joined with user and event identity, newest first.
func (r *AnalyticsRepository) Participants(ctx context.Context, organizerID int64) ([]models.Participant, error) {
	query := `
		SELECT u.id, u.name, u.email, u.profile_picture,
		       e.id, e.event_name, ui.interest_level, ui.created_at
		FROM user_interests ui
		JOIN users u ON ui.user_id = u.id
		JOIN events e ON ui.event_id = e.id
		WHERE e.organizer_id = $1
		ORDER BY ui.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, organizerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	participants := []models.Participant{}
	for rows.Next() {
		var p models.Participant
		err := rows.Scan(
			&p.UserID,
			&p.UserName,
			&p.UserEmail,
			&p.ProfilePicture,
			&p.EventID,
			&p.EventName,
			&p.InterestLevel,
			&p.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		participants = append(participants, p)
	}
	return participants, rows.Err()
}

// InterestedTrend buckets 'interested' interest timestamps by calendar day
// across the given events. Time of day is discarded; gaps are filled by the
// service layer.
func (r *AnalyticsRepository) InterestedTrend(ctx context.Context, eventIDs []int64) ([]models.TrendPoint, error) {
	query := `
		SELECT created_at::date::text, COUNT(*)
		FROM user_interests
		WHERE event_id = ANY($1) AND interest_level = 'interested'
		GROUP BY created_at::date
		ORDER BY created_at::date ASC`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(eventIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	points := []models.TrendPoint{}
	for rows.Next() {
		var p models.TrendPoint
		if err := rows.Scan(&p.Date, &p.Count); err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, rows.Err()
}

// RecentEventsCreated returns the user's latest created events.
func (r *AnalyticsRepository) RecentEventsCreated(ctx context.Context, userID int64, limit int) ([]RecentItem, error) {
	query := `
		SELECT event_name, created_at
		FROM events
		WHERE organizer_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	return r.queryRecent(ctx, query, userID, limit, func(rows *sql.Rows, item *RecentItem) error {
		return rows.Scan(&item.EventName, &item.CreatedAt)
	})
}

// RecentInterests returns the user's latest interest marks.
func (r *AnalyticsRepository) RecentInterests(ctx context.Context, userID int64, limit int) ([]RecentItem, error) {
	query := `
		SELECT ui.interest_level, e.event_name, ui.created_at
		FROM user_interests ui
		JOIN events e ON ui.event_id = e.id
		WHERE ui.user_id = $1
		ORDER BY ui.created_at DESC
		LIMIT $2`

	return r.queryRecent(ctx, query, userID, limit, func(rows *sql.Rows, item *RecentItem) error {
		return rows.Scan(&item.Level, &item.EventName, &item.CreatedAt)
	})
}

// RecentPayments returns the user's latest payment submissions.
func (r *AnalyticsRepository) RecentPayments(ctx context.Context, userID int64, limit int) ([]RecentItem, error) {
	query := `
		SELECT p.amount::text, p.payment_status, e.event_name, p.created_at
		FROM payments p
		JOIN events e ON p.event_id = e.id
		WHERE p.user_id = $1
		ORDER BY p.created_at DESC
		LIMIT $2`

	return r.queryRecent(ctx, query, userID, limit, func(rows *sql.Rows, item *RecentItem) error {
		return rows.Scan(&item.Amount, &item.Status, &item.EventName, &item.CreatedAt)
	})
}

func (r *AnalyticsRepository) queryRecent(ctx context.Context, query string, userID int64, limit int, scan func(*sql.Rows, *RecentItem) error) ([]RecentItem, error) {
	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []RecentItem{}
	for rows.Next() {
		var item RecentItem
		if err := scan(rows, &item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *AnalyticsRepository) CountEvents(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM events`).Scan(&count)
	return count, err
}

func (r *AnalyticsRepository) CountEventsByOrganizer(ctx context.Context, organizerID int64) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM events WHERE organizer_id = $1`, organizerID).Scan(&count)
	return count, err
}

func (r *AnalyticsRepository) CountDistinctOrganizers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(DISTINCT organizer_id) FROM events`).Scan(&count)
	return count, err
}

// Trending returns the event with the most 'interested' interests, or nil
// when no events exist. Ties break on arbitrary row order.
func (r *AnalyticsRepository) Trending(ctx context.Context) (*models.TrendingEvent, error) {
	trending := &models.TrendingEvent{}
	query := `
		SELECT e.event_name, COUNT(ui.id)
		FROM events e
		LEFT JOIN user_interests ui
		  ON e.id = ui.event_id AND ui.interest_level = 'interested'
		GROUP BY e.id, e.event_name
		ORDER BY COUNT(ui.id) DESC
		LIMIT 1`

	err := r.db.QueryRowContext(ctx, query).Scan(&trending.Name, &trending.Count)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return trending, err
}
