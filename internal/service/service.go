package service

import (
	"gatherly/internal/cache"
	"gatherly/internal/messaging"
	"gatherly/internal/repository"
	"gatherly/internal/search"
)

// Services bundles the business logic layer. The messaging, search and
// cache clients may be nil; every service degrades to database-only
// behavior when they are.
type Services struct {
	Users     *UserService
	Events    *EventService
	Interests *InterestService
	Payments  *PaymentService
	Analytics *AnalyticsService
}

func NewServices(repos *repository.Repositories, nats *messaging.NATSClient, searchClient *search.Client, userCache *cache.Client) *Services {
	return &Services{
		Users:     NewUserService(repos.Users, userCache),
		Events:    NewEventService(repos.Events, nats, searchClient),
		Interests: NewInterestService(repos.Interests, repos.Events, nats),
		Payments:  NewPaymentService(repos.Payments, repos.Events, nats),
		Analytics: NewAnalyticsService(repos.Analytics),
	}
}
