package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ekivenapictured-ship-it/venaok/internal/config"
	"github.com/ekivenapictured-ship-it/venaok/internal/db"
	"github.com/ekivenapictured-ship-it/venaok/internal/handler"
	"github.com/ekivenapictured-ship-it/venaok/internal/repository"
	"github.com/ekivenapictured-ship-it/venaok/internal/server"
	"github.com/ekivenapictured-ship-it/venaok/internal/service"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.AutoMigrate {
		if err := db.RunMigrations(cfg.DatabaseURL); err != nil {
			logger.Error("failed to run migrations", "err", err)
			os.Exit(1)
		}
	}

	pg, err := db.New(ctx, cfg)
	if err != nil {
		logger.Error("failed to connect database", "err", err)
		os.Exit(1)
	}
	defer pg.Close()

	// repositories
	userRepo := repository.UserRepository{DB: pg}
	clientRepo := repository.ClientRepository{DB: pg}
	projectRepo := repository.ProjectRepository{DB: pg}
	txRepo := repository.TransactionRepository{DB: pg}
	leadRepo := repository.LeadRepository{DB: pg}
	socialPostRepo := repository.SocialPostRepository{DB: pg}
	promoRepo := repository.PromoCodeRepository{DB: pg}
	packageRepo := repository.PackageRepository{DB: pg}
	addOnRepo := repository.AddOnRepository{DB: pg}
	teamMemberRepo := repository.TeamMemberRepository{DB: pg}
	contractRepo := repository.ContractRepository{DB: pg}
	assetRepo := repository.AssetRepository{DB: pg}
	sopRepo := repository.SOPRepository{DB: pg}
	feedbackRepo := repository.FeedbackRepository{DB: pg}
	notificationRepo := repository.NotificationRepository{DB: pg}
	profileRepo := repository.ProfileRepository{DB: pg}
	dashboardRepo := repository.DashboardRepository{DB: pg}

	// services
	authSvc := service.AuthService{Config: cfg, Users: userRepo, Logger: logger}
	promoSvc := service.PromoService{Promos: promoRepo}

	handlers := server.Handlers{
		Health:        handler.HealthHandler{DB: pg},
		Auth:          handler.AuthHandler{Service: &authSvc},
		Clients:       handler.ClientHandler{Repo: clientRepo, Projects: projectRepo},
		Projects:      handler.ProjectHandler{Repo: projectRepo},
		Transactions:  handler.TransactionHandler{Repo: txRepo},
		Leads:         handler.LeadHandler{Repo: leadRepo},
		SocialPosts:   handler.SocialPostHandler{Repo: socialPostRepo},
		PromoCodes:    handler.PromoCodeHandler{Repo: promoRepo, Service: promoSvc},
		Packages:      handler.PackageHandler{Repo: packageRepo},
		AddOns:        handler.AddOnHandler{Repo: addOnRepo},
		TeamMembers:   handler.TeamMemberHandler{Repo: teamMemberRepo},
		Contracts:     handler.ContractHandler{Repo: contractRepo},
		Assets:        handler.AssetHandler{Repo: assetRepo},
		SOPs:          handler.SOPHandler{Repo: sopRepo},
		Feedback:      handler.FeedbackHandler{Repo: feedbackRepo},
		Notifications: handler.NotificationHandler{Repo: notificationRepo},
		Profile:       handler.ProfileHandler{Repo: profileRepo},
		ClientReport: handler.ClientReportHandler{
			Clients:      clientRepo,
			Projects:     projectRepo,
			Transactions: txRepo,
		},
		PublicReport: handler.PublicReportHandler{
			Clients:      clientRepo,
			Projects:     projectRepo,
			Transactions: txRepo,
			Feedback:     feedbackRepo,
		},
		Dashboard: handler.DashboardHandler{Repo: dashboardRepo},
		Docs:      handler.DocsHandler{OpenAPIPath: "api/openapi.yaml"},
	}

	router := server.NewRouter(cfg, logger, handlers)

	if err := server.Start(ctx, cfg, router, logger); err != nil {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}
