package database

import (
	"fmt"
	"log/slog"
)

func (db *DB) RunMigrations() error {
	slog.Info("Running database migrations...")

	migrations := []string{
		createUsersTable,
		createEventsTable,
		createUserInterestsTable,
		createPaymentsTable,
		createEventsOrganizerIndex,
		createInterestsEventLevelIndex,
	}

	for i, migration := range migrations {
		slog.Info("Running migration", "step", i+1)
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	slog.Info("All migrations completed successfully")
	return nil
}

const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
    id SERIAL PRIMARY KEY,
    name VARCHAR(255) NOT NULL,
    email VARCHAR(255) UNIQUE NOT NULL,
    password_hash VARCHAR(255) NOT NULL,
    role VARCHAR(20) NOT NULL DEFAULT 'participant',
    profile_picture VARCHAR(500),
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP NOT NULL DEFAULT NOW(),

    CHECK (role IN ('participant', 'organizer', 'both'))
);`

const createEventsTable = `
CREATE TABLE IF NOT EXISTS events (
    id SERIAL PRIMARY KEY,
    event_name VARCHAR(255) NOT NULL,
    event_category VARCHAR(100) NOT NULL,
    event_date DATE NOT NULL,
    event_time VARCHAR(20) NOT NULL,
    location VARCHAR(255) NOT NULL,
    ticket_price NUMERIC(10,2) NOT NULL DEFAULT 0,
    capacity INTEGER NOT NULL,
    photo_url VARCHAR(500),
    organizer_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP NOT NULL DEFAULT NOW(),

    CHECK (ticket_price >= 0),
    CHECK (capacity > 0)
);`

const createUserInterestsTable = `
CREATE TABLE IF NOT EXISTS user_interests (
    id SERIAL PRIMARY KEY,
    user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    event_id INTEGER NOT NULL REFERENCES events(id) ON DELETE CASCADE,
    interest_level VARCHAR(20) NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP NOT NULL DEFAULT NOW(),

    UNIQUE(user_id, event_id),
    CHECK (interest_level IN ('interested', 'not_interested', 'going'))
);`

const createPaymentsTable = `
CREATE TABLE IF NOT EXISTS payments (
    id SERIAL PRIMARY KEY,
    user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    event_id INTEGER NOT NULL REFERENCES events(id) ON DELETE CASCADE,
    payment_method VARCHAR(10) NOT NULL DEFAULT 'bank',
    account_number VARCHAR(50),
    account_name VARCHAR(255),
    bank_name VARCHAR(255),
    card_last_four VARCHAR(4),
    card_holder_name VARCHAR(255),
    reference_number VARCHAR(100) NOT NULL,
    amount NUMERIC(10,2) NOT NULL,
    payment_status VARCHAR(20) NOT NULL DEFAULT 'pending',
    rejection_reason TEXT,
    verified_by INTEGER REFERENCES users(id),
    payment_date DATE,
    verified_at TIMESTAMP,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),

    UNIQUE(user_id, event_id, reference_number),
    CHECK (payment_method IN ('bank', 'card')),
    CHECK (payment_status IN ('pending', 'verified', 'rejected'))
);`

const createEventsOrganizerIndex = `
CREATE INDEX IF NOT EXISTS events_organizer_id_idx ON events (organizer_id);`

const createInterestsEventLevelIndex = `
CREATE INDEX IF NOT EXISTS user_interests_event_level_idx
ON user_interests (event_id, interest_level);`
