package server

import (
	"net/http"
	"time"

	"github.com/ekivenapictured-ship-it/venaok/internal/config"
	"github.com/ekivenapictured-ship-it/venaok/internal/domain"
	"github.com/ekivenapictured-ship-it/venaok/internal/handler"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"log/slog"
)

// Handlers bundles every route group the router mounts.
type Handlers struct {
	Health        handler.HealthHandler
	Auth          handler.AuthHandler
	Clients       handler.ClientHandler
	Projects      handler.ProjectHandler
	Transactions  handler.TransactionHandler
	Leads         handler.LeadHandler
	SocialPosts   handler.SocialPostHandler
	PromoCodes    handler.PromoCodeHandler
	Packages      handler.PackageHandler
	AddOns        handler.AddOnHandler
	TeamMembers   handler.TeamMemberHandler
	Contracts     handler.ContractHandler
	Assets        handler.AssetHandler
	SOPs          handler.SOPHandler
	Feedback      handler.FeedbackHandler
	Notifications handler.NotificationHandler
	Profile       handler.ProfileHandler
	ClientReport  handler.ClientReportHandler
	PublicReport  handler.PublicReportHandler
	Dashboard     handler.DashboardHandler
	Docs          handler.DocsHandler
}

// NewRouter wires HTTP routes and middleware.
func NewRouter(cfg config.Config, logger *slog.Logger, h Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(NewLoggerMiddleware(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(httprate.LimitByIP(200, 1*time.Minute))

	h.Health.RegisterRoutes(r)
	h.Auth.RegisterRoutes(r)
	h.Docs.RegisterRoutes(r)
	h.PublicReport.RegisterRoutes(r)
	r.Method("GET", "/metrics", promhttp.Handler())

	r.Group(func(pr chi.Router) {
		pr.Use(AuthMiddleware(cfg.JWTSecret))
		// member-level (member/admin)
		pr.Group(func(mr chi.Router) {
			mr.Use(RequireRole(domain.RoleAdmin, domain.RoleMember))
			h.Clients.RegisterRoutes(mr)
			h.Projects.RegisterRoutes(mr)
			h.Transactions.RegisterRoutes(mr)
			h.Leads.RegisterRoutes(mr)
			h.SocialPosts.RegisterRoutes(mr)
			h.Packages.RegisterRoutes(mr)
			h.AddOns.RegisterRoutes(mr)
			h.TeamMembers.RegisterRoutes(mr)
			h.Contracts.RegisterRoutes(mr)
			h.Assets.RegisterRoutes(mr)
			h.SOPs.RegisterRoutes(mr)
			h.Feedback.RegisterRoutes(mr)
			h.Notifications.RegisterRoutes(mr)
		})
		// admin-level
		pr.Group(func(ar chi.Router) {
			ar.Use(RequireRole(domain.RoleAdmin))
			h.PromoCodes.RegisterRoutes(ar)
			h.Profile.RegisterRoutes(ar)
			h.ClientReport.RegisterRoutes(ar)
			h.Dashboard.RegisterRoutes(ar)
		})
	})

	return r
}
