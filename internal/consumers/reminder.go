package consumers

import (
	"context"
	"log/slog"
	"time"

	"gatherly/internal/repository"
)

// PaymentReminderJob periodically flags payments that have sat pending for
// too long so organizers can follow up. It only reads; pending payments are
// never auto-rejected or expired.
type PaymentReminderJob struct {
	payments *repository.PaymentRepository
	maxAge   time.Duration
	interval time.Duration
	done     chan struct{}
}

func NewPaymentReminderJob(payments *repository.PaymentRepository, maxAge, interval time.Duration) *PaymentReminderJob {
	return &PaymentReminderJob{
		payments: payments,
		maxAge:   maxAge,
		interval: interval,
		done:     make(chan struct{}),
	}
}

func (j *PaymentReminderJob) Start() {
	slog.Info("Starting payment reminder job",
		"max_age", j.maxAge, "interval", j.interval)

	go func() {
		ticker := time.NewTicker(j.interval)
		defer ticker.Stop()

		j.run()
		for {
			select {
			case <-ticker.C:
				j.run()
			case <-j.done:
				return
			}
		}
	}()
}

func (j *PaymentReminderJob) Stop() {
	close(j.done)
	slog.Info("Payment reminder job stopped")
}

func (j *PaymentReminderJob) run() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cutoff := time.Now().Add(-j.maxAge)
	stale, err := j.payments.ListStalePending(ctx, cutoff)
	if err != nil {
		slog.Error("Failed to list stale pending payments", "error", err)
		return
	}
	if len(stale) == 0 {
		return
	}

	slog.Info("Pending payments awaiting verification", "count", len(stale))
	for _, p := range stale {
		slog.Info("Payment pending verification reminder",
			"payment_id", p.ID,
			"user_id", p.UserID,
			"event_id", p.EventID,
			"amount", p.Amount,
			"submitted_at", p.CreatedAt,
		)
	}
}
