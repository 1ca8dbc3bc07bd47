package api

import (
	"github.com/gin-gonic/gin"

	"gatherly/internal/cache"
	"gatherly/internal/config"
	"gatherly/internal/database"
	"gatherly/internal/handlers"
	"gatherly/internal/logger"
	"gatherly/internal/messaging"
	"gatherly/internal/middleware"
	"gatherly/internal/repository"
	"gatherly/internal/search"
	"gatherly/internal/service"
)

type Server struct {
	config   *config.Config
	router   *gin.Engine
	db       *database.DB
	nats     *messaging.NATSClient
	cache    *cache.Client
	search   *search.Client
	handlers *handlers.Handlers
}

// NewServer wires the full API. The database is mandatory; messaging,
// cache and search are optional and the server runs without them.
func NewServer(cfg *config.Config) *Server {
	gin.SetMode(cfg.GinMode)

	db, err := database.Connect(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	if err := db.RunMigrations(); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	natsClient, err := messaging.NewNATSClient(cfg.NATS)
	if err != nil {
		logger.Get().Warn("NATS unavailable, change events will not be published", "error", err)
		natsClient = nil
	}

	var cacheClient *cache.Client
	if cfg.Redis.Addr != "" {
		cacheClient, err = cache.NewClient(cfg.Redis)
		if err != nil {
			logger.Get().Warn("Redis unavailable, user caching disabled", "error", err)
			cacheClient = nil
		}
	}

	var searchClient *search.Client
	if cfg.Elasticsearch.URL != "" {
		searchClient, err = search.NewClient(cfg.Elasticsearch)
		if err != nil {
			logger.Get().Warn("Elasticsearch unavailable, search falls back to database", "error", err)
			searchClient = nil
		}
	}

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, natsClient, searchClient, cacheClient)

	server := &Server{
		config:   cfg,
		db:       db,
		nats:     natsClient,
		cache:    cacheClient,
		search:   searchClient,
		handlers: handlers.NewHandlers(services, db, cfg.UploadDir),
	}
	server.setupRouter()
	return server
}

func (s *Server) setupRouter() {
	router := gin.New()
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
		middleware.Metrics(),
	)

	router.GET("/", s.handlers.Root)
	router.GET("/metrics", middleware.MetricsHandler())
	router.Static("/uploads", s.config.UploadDir)

	api := router.Group("/api")
	{
		api.GET("/ping", s.handlers.Ping)
		api.GET("/health", s.handlers.Health)

		api.POST("/auth/signup", s.handlers.Signup)
		api.POST("/auth/login", s.handlers.Login)
		api.PUT("/auth/reset-password", s.handlers.ResetPassword)
		api.GET("/auth/validate", s.handlers.Validate)

		api.GET("/users/:userId", s.handlers.GetUser)
		api.PUT("/users/:userId/profile", s.handlers.UpdateProfile)
		api.POST("/users/:userId/profile-picture", s.handlers.UploadProfilePicture)
		api.DELETE("/users/:userId/profile-picture", s.handlers.RemoveProfilePicture)

		api.GET("/users/:userId/attendee-insights", s.handlers.AttendeeInsights)
		api.GET("/users/:userId/registration-trend", s.handlers.RegistrationTrend)
		api.GET("/users/:userId/recent-activity", s.handlers.RecentActivity)
		api.GET("/users/:userId/interested-participants", s.handlers.InterestedParticipants)
		api.GET("/users/:userId/participants-list", s.handlers.ParticipantsList)
		api.GET("/dashboard/stats/:userId", s.handlers.DashboardStats)

		api.POST("/events", s.handlers.CreateEvent)
		api.GET("/events", s.handlers.ListEvents)
		api.GET("/events/:id", s.handlers.GetEvent)
		api.PUT("/events/:id", s.handlers.UpdateEvent)
		api.DELETE("/events/:id", s.handlers.DeleteEvent)
		api.POST("/events/:id/photo", s.handlers.UploadEventPhoto)
		api.GET("/events/:id/overview", s.handlers.EventOverview)
		api.GET("/events/user/:userId", s.handlers.ListEventsByOrganizer)

		api.POST("/user-interests", s.handlers.SetInterest)
		api.GET("/user-interests/:userId", s.handlers.ListInterests)
		api.GET("/user-interests/:userId/:eventId", s.handlers.GetInterest)
		api.DELETE("/user-interests/:userId/:eventId", s.handlers.RemoveInterest)

		api.POST("/payments", s.handlers.SubmitPayment)
		api.PUT("/payments/:paymentId/verify", s.handlers.VerifyPayment)
		api.GET("/payments/user/:userId", s.handlers.ListPayments)
		api.GET("/payments/:userId/:eventId", s.handlers.GetLatestPayment)
	}

	s.router = router
}

func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) Addr() string {
	return ":" + s.config.Port
}

// Cleanup closes external connections during shutdown.
func (s *Server) Cleanup() {
	if err := s.nats.Close(); err != nil {
		logger.Get().Error("Failed to close NATS connection", "error", err)
	}
	if err := s.cache.Close(); err != nil {
		logger.Get().Error("Failed to close Redis connection", "error", err)
	}
	if err := s.db.Close(); err != nil {
		logger.Get().Error("Failed to close database connection", "error", err)
	}
}
