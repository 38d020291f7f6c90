package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"

	"github.com/eresik/eresik/internal/service"
	"github.com/eresik/eresik/pkg/cleanup"
)

type Server struct {
	mx                   *chi.Mux
	requestsService      service.RequestsServiceI
	missionsService      service.MissionsServiceI
	rewardsService       service.RewardsServiceI
	notificationsService service.NotificationsServiceI
	inventoryService     service.InventoryServiceI
	reportsService       service.ReportsServiceI
}

type ServicesList struct {
	RequestsService      service.RequestsServiceI
	MissionsService      service.MissionsServiceI
	RewardsService       service.RewardsServiceI
	NotificationsService service.NotificationsServiceI
	InventoryService     service.InventoryServiceI
	ReportsService       service.ReportsServiceI
}

func New(servicesOptions *ServicesList) *Server {
	return &Server{
		mx:                   chi.NewMux(),
		requestsService:      servicesOptions.RequestsService,
		missionsService:      servicesOptions.MissionsService,
		rewardsService:       servicesOptions.RewardsService,
		notificationsService: servicesOptions.NotificationsService,
		inventoryService:     servicesOptions.InventoryService,
		reportsService:       servicesOptions.ReportsService,
	}
}

func (s *Server) routes() {
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/requests", s.CreateRequest)
		r.Get("/requests", s.GetRequests)
		r.Get("/requests/{id}", s.GetRequest)
		r.Patch("/requests/{id}/status", s.UpdateRequestStatus)
		r.Get("/users/{id}/requests", s.GetUserRequests)

		r.Get("/missions", s.GetMissions)
		r.Post("/missions/{id}/complete", s.CompleteMission)

		r.Get("/notifications", s.GetNotifications)
		r.Post("/notifications/{id}/read", s.MarkNotificationRead)
		r.Post("/notifications/read", s.MarkAllNotificationsRead)

		r.Get("/profile", s.GetProfile)
		r.Post("/profile/badges/{id}", s.AwardBadge)

		r.Get("/leaderboard", s.GetLeaderboard)
		r.Get("/categories", s.GetCategories)

		r.Get("/stock", s.GetStock)
		r.Get("/sales", s.GetSales)
		r.Post("/sales", s.RecordSale)
		r.Get("/kpi", s.GetKPI)
		r.Get("/users", s.GetRegisteredUsers)
	})
}

// Run mounts the routes and serves until Shutdown. The dashboard front-end
// runs on a different origin, hence the CORS layer.
func (s *Server) Run(address, allowedOrigin string) error {
	s.routes()
	corsOptions := cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch},
		AllowedHeaders: []string{"Content-Type"},
	}
	if allowedOrigin != "" {
		corsOptions.AllowedOrigins = []string{allowedOrigin}
	}
	serv := &http.Server{
		Addr:    address,
		Handler: cors.New(corsOptions).Handler(s.mx),
	}
	cleanup.Register(&cleanup.Job{
		Name: "shutting down http server",
		F: func() error {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
			defer cancel()
			return serv.Shutdown(ctx)
		},
	})
	err := serv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
