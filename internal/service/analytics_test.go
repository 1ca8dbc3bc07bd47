package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"gatherly/internal/models"
	"gatherly/internal/repository"
)

func TestDensifyTrendFillsGaps(t *testing.T) {
	points := []models.TrendPoint{
		{Date: "2026-03-01", Count: 2},
		{Date: "2026-03-04", Count: 1},
	}

	dense := densifyTrend(points)

	assert.Equal(t, []models.TrendPoint{
		{Date: "2026-03-01", Count: 2},
		{Date: "2026-03-02", Count: 0},
		{Date: "2026-03-03", Count: 0},
		{Date: "2026-03-04", Count: 1},
	}, dense)
}

func TestDensifyTrendSingleDay(t *testing.T) {
	points := []models.TrendPoint{{Date: "2026-03-01", Count: 5}}
	assert.Equal(t, points, densifyTrend(points))
}

func TestDensifyTrendEmpty(t *testing.T) {
	dense := densifyTrend(nil)
	assert.NotNil(t, dense)
	assert.Empty(t, dense)
}

func TestDensifyTrendCrossesMonthBoundary(t *testing.T) {
	points := []models.TrendPoint{
		{Date: "2026-01-31", Count: 1},
		{Date: "2026-02-02", Count: 3},
	}

	dense := densifyTrend(points)

	assert.Len(t, dense, 3)
	assert.Equal(t, models.TrendPoint{Date: "2026-02-01", Count: 0}, dense[1])
}

func TestFormatTimeAgo(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{"under a minute", now.Add(-30 * time.Second), "0 minutes ago"},
		{"minutes", now.Add(-45 * time.Minute), "45 minutes ago"},
		{"hours", now.Add(-5 * time.Hour), "5 hours ago"},
		{"one day", now.Add(-30 * time.Hour), "1 days ago"},
		{"days", now.Add(-3 * 24 * time.Hour), "3 days ago"},
		{"weeks stay in days", now.Add(-10 * 24 * time.Hour), "10 days ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatTimeAgo(tt.at, now))
		})
	}
}

func TestMergeActivityOrdersNewestFirst(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	created := []repository.RecentItem{
		{EventName: "Beach Cleanup", CreatedAt: now.Add(-3 * time.Hour)},
	}
	interests := []repository.RecentItem{
		{Level: models.InterestGoing, EventName: "Food Drive", CreatedAt: now.Add(-2 * time.Hour)},
	}
	payments := []repository.RecentItem{
		{Amount: "100.00", Status: models.PaymentStatusVerified, EventName: "Food Drive", CreatedAt: now.Add(-1 * time.Hour)},
	}

	items := mergeActivity(created, interests, payments, now)

	assert.Equal(t, []string{
		"Payment verified: LKR 100.00 for Food Drive",
		"Marked going to: Food Drive",
		"Created event: Beach Cleanup",
	}, []string{items[0].Action, items[1].Action, items[2].Action})
	assert.Equal(t, []int{1, 2, 3}, []int{items[0].ID, items[1].ID, items[2].ID})
}

func TestMergeActivityTruncatesToFive(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	created := []repository.RecentItem{}
	for i := 0; i < 4; i++ {
		created = append(created, repository.RecentItem{
			EventName: "Event", CreatedAt: now.Add(-time.Duration(i) * time.Minute),
		})
	}
	interests := []repository.RecentItem{
		{Level: models.InterestInterested, EventName: "A", CreatedAt: now.Add(-10 * time.Minute)},
		{Level: models.InterestInterested, EventName: "B", CreatedAt: now.Add(-20 * time.Minute)},
	}

	items := mergeActivity(created, interests, nil, now)

	assert.Len(t, items, 5)
	// The oldest entry falls off; ids are renumbered after truncation.
	assert.Equal(t, "Marked interested in: A", items[4].Action)
	assert.Equal(t, 5, items[4].ID)
}

func TestMergeActivityColors(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	interests := []repository.RecentItem{
		{Level: models.InterestInterested, EventName: "A", CreatedAt: now},
		{Level: models.InterestNotInterested, EventName: "B", CreatedAt: now.Add(-time.Minute)},
		{Level: models.InterestGoing, EventName: "C", CreatedAt: now.Add(-2 * time.Minute)},
	}
	payments := []repository.RecentItem{
		{Amount: "50.00", Status: models.PaymentStatusRejected, EventName: "D", CreatedAt: now.Add(-3 * time.Minute)},
		{Amount: "50.00", Status: models.PaymentStatusPending, EventName: "E", CreatedAt: now.Add(-4 * time.Minute)},
	}

	items := mergeActivity(nil, interests, payments, now)

	assert.Equal(t, "#f59e0b", items[0].Color)
	assert.Equal(t, "#ef4444", items[1].Color)
	assert.Equal(t, "#10b981", items[2].Color)
	assert.Equal(t, "#ef4444", items[3].Color)
	assert.Equal(t, "#f59e0b", items[4].Color)
}

func TestMergeActivityEmptyStreams(t *testing.T) {
	items := mergeActivity(nil, nil, nil, time.Now())
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestTrendingOrDefault(t *testing.T) {
	assert.Equal(t,
		models.TrendingEvent{Name: "No events yet", Count: 0},
		trendingOrDefault(nil))

	trending := &models.TrendingEvent{Name: "Beach Cleanup", Count: 7}
	assert.Equal(t, *trending, trendingOrDefault(trending))
}
