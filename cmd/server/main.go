package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"transport-backend/internal/auth"
	"transport-backend/internal/config"
	"transport-backend/internal/database"
	"transport-backend/internal/db"
	"transport-backend/internal/handlers"
	"transport-backend/internal/health"
	h "transport-backend/internal/http"
	"transport-backend/internal/middleware"
	"transport-backend/internal/repositories"
	"transport-backend/internal/services"
)

func main() {
	port := flag.Int("port", 0, "Server port (overrides config)")
	flag.Parse()

	// Load configuration
	cfg := config.Load()
	if *port != 0 {
		cfg.Server.Port = *port
	}

	// Connect to the database
	pool := db.Connect(cfg)
	defer pool.Close()

	// Run database migrations
	log.Println("Running database migrations...")
	migrator := database.NewMigrator(pool)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := migrator.RunMigrations(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize health checker and JWT manager
	healthChecker := health.NewHealthChecker(pool)
	jwtManager := auth.NewJWTManager(cfg)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(pool)
	clientRepo := repositories.NewClientRepository(pool)
	expeditionRepo := repositories.NewExpeditionRepository(pool)
	devisRepo := repositories.NewDevisRepository(pool)
	chauffeurRepo := repositories.NewChauffeurRepository(pool)
	fraisRepo := repositories.NewFraisRepository(pool)
	categorieRepo := repositories.NewCategorieFraisRepository(pool)
	dashboardRepo := repositories.NewDashboardRepository(pool)

	// Initialize services
	authService := services.NewAuthService(userRepo, jwtManager)
	clientService := services.NewClientService(clientRepo, expeditionRepo, devisRepo)
	expeditionService := services.NewExpeditionService(expeditionRepo)
	devisService := services.NewDevisService(devisRepo)
	chauffeurService := services.NewChauffeurService(chauffeurRepo)
	fraisService := services.NewFraisService(fraisRepo)
	categorieService := services.NewCategorieFraisService(categorieRepo)
	dashboardService := services.NewDashboardService(dashboardRepo)
	pdfService := services.NewPDFService(expeditionRepo, devisRepo, fraisRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	clientHandler := handlers.NewClientHandler(clientService)
	expeditionHandler := handlers.NewExpeditionHandler(expeditionService)
	devisHandler := handlers.NewDevisHandler(devisService)
	chauffeurHandler := handlers.NewChauffeurHandler(chauffeurService)
	fraisHandler := handlers.NewFraisHandler(fraisService)
	categorieHandler := handlers.NewCategorieFraisHandler(categorieService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	pdfHandler := handlers.NewPDFHandler(pdfService)
	healthHandler := handlers.NewHealthHandler(healthChecker)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtManager)
	corsMiddleware := middleware.NewCORS(cfg)

	router := h.NewRouter(
		authHandler,
		clientHandler,
		expeditionHandler,
		devisHandler,
		chauffeurHandler,
		fraisHandler,
		categorieHandler,
		dashboardHandler,
		pdfHandler,
		healthHandler,
		authMiddleware,
	)

	// Wrap with panic recovery and metrics middleware
	handler := middleware.PanicRecovery(middleware.MetricsMiddleware(corsMiddleware(router)))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("[Server] Listening on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
