package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"Employee-Attendance-Portal/config"
	_ "Employee-Attendance-Portal/docs"
	"Employee-Attendance-Portal/handlers"
	"Employee-Attendance-Portal/pkg/accessgate"
	"Employee-Attendance-Portal/pkg/ipreport"
	"Employee-Attendance-Portal/pkg/metrics"
	"Employee-Attendance-Portal/pkg/paseto"
	"Employee-Attendance-Portal/pkg/session"
	"Employee-Attendance-Portal/repository"
	"Employee-Attendance-Portal/router"
	"Employee-Attendance-Portal/seeder"
	_ "time/tzdata"
)

// @title Employee Attendance Portal API
// @version 1.0
// @description API for employee attendance: check-in/out, regularization requests, admin review and network access control
//
// @host localhost:3000
// @BasePath /api/v1
// @schemes http https
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.
//
// @tag.name Gate
// @tag.description Network access gate and admin override
//
// @tag.name Auth
// @tag.description Authentication endpoints
//
// @tag.name Users
// @tag.description Profile, password, photo and badge
//
// @tag.name Attendance
// @tag.description Check-in, check-out and calendar
//
// @tag.name Regularization
// @tag.description Attendance correction requests
//
// @tag.name Posts
// @tag.description Blog and notice board
//
// @tag.name Holidays
// @tag.description Holiday calendar
//
// @tag.name Admin
// @tag.description Admin only endpoints
func main() {
	cfg := config.LoadConfig()
	loc := cfg.Location()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := config.OpenStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open table store: %v", err)
	}
	defer store.Close(context.Background())

	if _, err := seeder.SeedAdmin(repository.NewEmployeeRepository(store), seeder.AdminAccount{
		Code:     cfg.SeedAdminCode,
		Name:     cfg.SeedAdminName,
		Password: cfg.SeedAdminPassword,
	}); err != nil {
		log.Printf("Warning: seeding failed: %v", err)
	}

	maker, err := paseto.NewMaker(cfg.PASETO_SECRET)
	if err != nil {
		log.Fatalf("Failed to initialize token maker: %v", err)
	}
	sessions := session.NewManager(maker, cfg.SessionTTL)
	go sessions.Run(ctx, 5*time.Minute)

	local := accessgate.DetectLocal(accessgate.Environment{
		AppEnv:          cfg.AppEnv,
		CloudDeployment: cfg.CloudDeployment,
		OutboundIP:      accessgate.OutboundIP,
	})
	gate, err := accessgate.New(cfg.IPConfigPath, accessgate.Options{
		RestrictionEnabled: cfg.IPRestrictionEnabled,
		OverrideCode:       cfg.AdminOverrideCode,
		Local:              local,
	})
	if err != nil {
		log.Fatalf("Failed to load IP configuration: %v", err)
	}
	gate.ConsumeForceOverride(cfg.ForceOverridePath())
	go func() {
		if err := gate.Watch(ctx, 500*time.Millisecond); err != nil {
			log.Printf("Warning: IP config watcher stopped: %v", err)
		}
	}()

	m := metrics.New()
	reported := ipreport.NewStore(cfg.IPReportedPath)

	if cfg.IPServerEnabled {
		sidecar := ipreport.NewServer(reported, m)
		go func() {
			log.Printf("IP report server listening on port %s", cfg.IPServerPort)
			if err := sidecar.Listen(":" + cfg.IPServerPort); err != nil {
				log.Printf("IP report server stopped: %v", err)
			}
		}()
		defer sidecar.Shutdown()
	}

	if cfg.IPReportOnStart && cfg.IPReportingEndpoint != "" {
		go func() {
			if err := ipreport.NewSender(cfg.IPReportingEndpoint).Send(ctx, accessgate.OutboundIP()); err != nil {
				log.Printf("Warning: %v", err)
			}
		}()
	}

	app := fiber.New()

	config.SetupCORS(app, cfg.AllowedOrigins)

	app.Use(logger.New())
	app.Use(m.Middleware())

	router.SetupRoutes(app, router.Deps{
		Store:         store,
		Sessions:      sessions,
		Gate:          gate,
		Reported:      reported,
		Metrics:       m,
		Clock:         handlers.ClockIn(loc),
		PhotosDir:     cfg.PhotosDir,
		BlogImagesDir: cfg.BlogImagesDir,
	})

	go func() {
		<-ctx.Done()
		log.Println("Shutting down...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Printf("Error during shutdown: %v", err)
		}
	}()

	log.Printf("Server running on port %s", cfg.Port)
	log.Printf("API Documentation: http://localhost:%s/docs/index.html", cfg.Port)
	log.Printf("Health Check: http://localhost:%s/", cfg.Port)
	log.Printf("CORS enabled for origins: %v", cfg.AllowedOrigins)
	log.Printf("IP restriction: env=%v file=%v local=%v", cfg.IPRestrictionEnabled, gate.Config().RestrictionEnabled(), local)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
