package repository

import (
	"errors"

	"github.com/lib/pq"

	"gatherly/internal/database"
)

type Repositories struct {
	Users     *UserRepository
	Events    *EventRepository
	Interests *InterestRepository
	Payments  *PaymentRepository
	Analytics *AnalyticsRepository
}

func NewRepositories(db *database.DB) *Repositories {
	return &Repositories{
		Users:     NewUserRepository(db),
		Events:    NewEventRepository(db),
		Interests: NewInterestRepository(db),
		Payments:  NewPaymentRepository(db),
		Analytics: NewAnalyticsRepository(db),
	}
}

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation. Races on unique keys must surface as conflicts, not crashes.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
