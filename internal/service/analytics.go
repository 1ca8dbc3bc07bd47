package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gatherly/internal/models"
	"gatherly/internal/repository"
)

// Activity colors keyed by what happened.
const (
	colorEventCreated = "#3b82f6"
	colorInterest     = "#f59e0b"
	colorGoing        = "#10b981"
	colorRejected     = "#ef4444"
)

const recentActivityLimit = 5

type AnalyticsService struct {
	analytics *repository.AnalyticsRepository
}

func NewAnalyticsService(analytics *repository.AnalyticsRepository) *AnalyticsService {
	return &AnalyticsService{analytics: analytics}
}

// Overview reports per-event interest counts and verified revenue for every
// event the organizer owns. Events with no activity appear with zeros.
func (s *AnalyticsService) Overview(ctx context.Context, organizerID int64) ([]models.EventOverview, error) {
	events, err := s.analytics.OwnedEvents(ctx, organizerID)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return []models.EventOverview{}, nil
	}

	ids := make([]int64, len(events))
	for i, e := range events {
		ids[i] = e.EventID
	}

	counts, err := s.analytics.InterestCountsByEvent(ctx, ids)
	if err != nil {
		return nil, err
	}
	revenue, err := s.analytics.VerifiedRevenueByEvent(ctx, ids)
	if err != nil {
		return nil, err
	}

	for i := range events {
		c := counts[events[i].EventID]
		events[i].Interested = c.Interested
		events[i].NotInterested = c.NotInterested
		events[i].Going = c.Going
		events[i].Revenue = revenue[events[i].EventID]
	}
	return events, nil
}

// Insights returns the attendee distribution across the organizer's events
// plus the total.
func (s *AnalyticsService) Insights(ctx context.Context, organizerID int64) (*models.AttendeeInsightsResponse, error) {
	distribution, err := s.analytics.AttendeeCounts(ctx, organizerID)
	if err != nil {
		return nil, err
	}

	var total int64
	for _, e := range distribution {
		total += e.Attendees
	}
	return &models.AttendeeInsightsResponse{
		EventDistribution: distribution,
		TotalAttendees:    total,
	}, nil
}

func (s *AnalyticsService) InterestedParticipants(ctx context.Context, organizerID int64) (*models.InterestedParticipantsResponse, error) {
	counts, err := s.analytics.InterestedCounts(ctx, organizerID)
	if err != nil {
		return nil, err
	}
	return &models.InterestedParticipantsResponse{EventInterests: counts}, nil
}

func (s *AnalyticsService) ParticipantsList(ctx context.Context, organizerID int64) (*models.ParticipantsListResponse, error) {
	participants, err := s.analytics.Participants(ctx, organizerID)
	if err != nil {
		return nil, err
	}
	return &models.ParticipantsListResponse{Participants: participants}, nil
}

// RegistrationTrend buckets interested marks on the organizer's events by
// day, with zero-count days filled in between the first and last mark.
func (s *AnalyticsService) RegistrationTrend(ctx context.Context, organizerID int64) ([]models.TrendPoint, error) {
	events, err := s.analytics.OwnedEvents(ctx, organizerID)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return []models.TrendPoint{}, nil
	}

	ids := make([]int64, len(events))
	for i, e := range events {
		ids[i] = e.EventID
	}

	points, err := s.analytics.InterestedTrend(ctx, ids)
	if err != nil {
		return nil, err
	}
	return densifyTrend(points), nil
}

const trendDateLayout = "2006-01-02"

// densifyTrend fills calendar gaps between the first and last bucket with
// zero-count days. Input must be sorted ascending by date.
func densifyTrend(points []models.TrendPoint) []models.TrendPoint {
	if len(points) == 0 {
		return []models.TrendPoint{}
	}

	counts := make(map[string]int64, len(points))
	for _, p := range points {
		counts[p.Date] = p.Count
	}

	start, err := time.Parse(trendDateLayout, points[0].Date)
	if err != nil {
		return points
	}
	end, err := time.Parse(trendDateLayout, points[len(points)-1].Date)
	if err != nil {
		return points
	}

	dense := []models.TrendPoint{}
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		date := day.Format(trendDateLayout)
		dense = append(dense, models.TrendPoint{Date: date, Count: counts[date]})
	}
	return dense
}

// RecentActivity merges the user's latest created events, interest marks
// and payments into one feed, newest first, capped at five entries.
func (s *AnalyticsService) RecentActivity(ctx context.Context, userID int64) ([]models.ActivityItem, error) {
	created, err := s.analytics.RecentEventsCreated(ctx, userID, recentActivityLimit)
	if err != nil {
		return nil, err
	}
	interests, err := s.analytics.RecentInterests(ctx, userID, recentActivityLimit)
	if err != nil {
		return nil, err
	}
	payments, err := s.analytics.RecentPayments(ctx, userID, recentActivityLimit)
	if err != nil {
		return nil, err
	}

	return mergeActivity(created, interests, payments, time.Now()), nil
}

// mergeActivity flattens the three activity streams into one feed sorted
// newest first, truncated to the limit, ids renumbered from 1.
func mergeActivity(created, interests, payments []repository.RecentItem, now time.Time) []models.ActivityItem {
	type entry struct {
		action string
		color  string
		at     time.Time
	}
	entries := []entry{}

	for _, item := range created {
		entries = append(entries, entry{
			action: "Created event: " + item.EventName,
			color:  colorEventCreated,
			at:     item.CreatedAt,
		})
	}
	for _, item := range interests {
		e := entry{at: item.CreatedAt}
		switch item.Level {
		case models.InterestGoing:
			e.action = "Marked going to: " + item.EventName
			e.color = colorGoing
		case models.InterestNotInterested:
			e.action = "Marked not interested in: " + item.EventName
			e.color = colorRejected
		default:
			e.action = "Marked interested in: " + item.EventName
			e.color = colorInterest
		}
		entries = append(entries, e)
	}
	for _, item := range payments {
		e := entry{at: item.CreatedAt}
		switch item.Status {
		case models.PaymentStatusVerified:
			e.action = fmt.Sprintf("Payment verified: LKR %s for %s", item.Amount, item.EventName)
			e.color = colorGoing
		case models.PaymentStatusRejected:
			e.action = fmt.Sprintf("Payment rejected: LKR %s for %s", item.Amount, item.EventName)
			e.color = colorRejected
		default:
			e.action = fmt.Sprintf("Payment pending: LKR %s for %s", item.Amount, item.EventName)
			e.color = colorInterest
		}
		entries = append(entries, e)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].at.After(entries[j].at)
	})
	if len(entries) > recentActivityLimit {
		entries = entries[:recentActivityLimit]
	}

	items := make([]models.ActivityItem, len(entries))
	for i, e := range entries {
		items[i] = models.ActivityItem{
			ID:     i + 1,
			Action: e.action,
			Time:   formatTimeAgo(e.at, now),
			Color:  e.color,
		}
	}
	return items
}

// formatTimeAgo renders a relative timestamp for the activity feed:
// minutes under an hour, hours under a day, days beyond that.
func formatTimeAgo(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Hour:
		return fmt.Sprintf("%d minutes ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%d hours ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%d days ago", int(d.Hours()/24))
	}
}

// DashboardStats returns the platform-wide dashboard counters.
func (s *AnalyticsService) DashboardStats(ctx context.Context, userID int64) (*models.DashboardStats, error) {
	totalEvents, err := s.analytics.CountEvents(ctx)
	if err != nil {
		return nil, err
	}
	trending, err := s.analytics.Trending(ctx)
	if err != nil {
		return nil, err
	}
	organized, err := s.analytics.CountEventsByOrganizer(ctx, userID)
	if err != nil {
		return nil, err
	}
	members, err := s.analytics.CountDistinctOrganizers(ctx)
	if err != nil {
		return nil, err
	}

	return &models.DashboardStats{
		TotalEvents:         totalEvents,
		TrendingEvent:       trendingOrDefault(trending),
		UserOrganizedEvents: organized,
		TotalMembers:        members,
	}, nil
}

// trendingOrDefault substitutes the empty-platform placeholder when no
// event exists to trend.
func trendingOrDefault(trending *models.TrendingEvent) models.TrendingEvent {
	if trending == nil {
		return models.TrendingEvent{Name: "No events yet", Count: 0}
	}
	return *trending
}
