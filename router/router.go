package router

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"Employee-Attendance-Portal/config/middleware"
	_ "Employee-Attendance-Portal/docs"
	"Employee-Attendance-Portal/handlers"
	"Employee-Attendance-Portal/pkg/accessgate"
	"Employee-Attendance-Portal/pkg/attendance"
	"Employee-Attendance-Portal/pkg/ipreport"
	"Employee-Attendance-Portal/pkg/metrics"
	"Employee-Attendance-Portal/pkg/regularization"
	"Employee-Attendance-Portal/pkg/session"
	"Employee-Attendance-Portal/pkg/tablestore"
	"Employee-Attendance-Portal/repository"
)

// Deps is everything the routes need, built once in main.
type Deps struct {
	Store         tablestore.Store
	Sessions      *session.Manager
	Gate          *accessgate.Gate
	Reported      *ipreport.Store
	Metrics       *metrics.Metrics
	Clock         handlers.Clock
	PhotosDir     string
	BlogImagesDir string
}

func SetupRoutes(app *fiber.App, d Deps) {
	log.Println("Registering application routes...")

	// Repositories
	employeeRepo := repository.NewEmployeeRepository(d.Store)
	attendanceRepo := repository.NewAttendanceRepository(d.Store)
	regularizationRepo := repository.NewRegularizationRepository(d.Store)
	postRepo := repository.NewPostRepository(d.Store)
	holidayRepo := repository.NewHolidayRepository(d.Store)

	// Services
	recorder := attendance.NewRecorder(employeeRepo, attendanceRepo)
	workflow := regularization.NewWorkflow(d.Store, attendanceRepo, regularizationRepo)

	// Handlers
	gateHandler := handlers.NewGateHandler(d.Gate, d.Sessions)
	authHandler := handlers.NewAuthHandler(employeeRepo, d.Sessions)
	userHandler := handlers.NewUserHandler(employeeRepo, d.PhotosDir)
	attendanceHandler := handlers.NewAttendanceHandler(recorder, attendanceRepo, holidayRepo, workflow, d.Metrics, d.Clock)
	regularizationHandler := handlers.NewRegularizationHandler(workflow, d.Metrics, d.Clock)
	employeeHandler := handlers.NewEmployeeHandler(employeeRepo)
	postHandler := handlers.NewPostHandler(postRepo, d.BlogImagesDir, d.Clock)
	holidayHandler := handlers.NewHolidayHandler(holidayRepo, d.Clock)
	ipHandler := handlers.NewIPHandler(d.Gate, d.Reported)

	// Health check, docs & metrics
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Employee Attendance Portal API",
			"status":  "running",
			"docs":    "/docs/index.html",
		})
	})
	app.Get("/docs/*", swagger.HandlerDefault)
	if d.Metrics != nil {
		app.Get("/metrics", d.Metrics.Handler())
	}

	// API v1 group
	api := app.Group("/api/v1", middleware.SessionLoader(d.Sessions))

	// Gate routes stay reachable from denied networks
	gateGroup := api.Group("/gate")
	gateGroup.Get("/status", gateHandler.Status)
	gateGroup.Post("/override", gateHandler.Override)

	gated := api.Group("/", middleware.IPGate(d.Gate, d.Sessions, d.Metrics))
	gated.Static("/uploads/blog_images", d.BlogImagesDir)

	// Authentication routes
	authGroup := gated.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", middleware.AuthMiddleware(), authHandler.Logout)

	// User routes
	userGroup := gated.Group("/users", middleware.AuthMiddleware())
	userGroup.Get("/me", userHandler.Me)
	userGroup.Post("/change-password", authHandler.ChangePassword)
	userGroup.Post("/me/photo", userHandler.UploadPhoto)
	userGroup.Get("/:code/photo", userHandler.GetPhoto)
	userGroup.Get("/:code/badge", userHandler.Badge)

	// Attendance routes
	attendanceGroup := gated.Group("/attendance", middleware.AuthMiddleware())
	attendanceGroup.Post("/record", attendanceHandler.Record)
	attendanceGroup.Get("/calendar", attendanceHandler.MyCalendar)

	gated.Get("/holidays", middleware.AuthMiddleware(), holidayHandler.List)

	// Regularization routes
	regularizationGroup := gated.Group("/regularizations", middleware.AuthMiddleware())
	regularizationGroup.Post("/", regularizationHandler.Submit)
	regularizationGroup.Get("/mine", regularizationHandler.Mine)

	// Blog and notice board
	postGroup := gated.Group("/posts", middleware.AuthMiddleware())
	postGroup.Get("/", postHandler.List)
	postGroup.Post("/", postHandler.Create)

	// Admin routes
	adminGroup := gated.Group("/admin", middleware.AuthMiddleware(), middleware.AdminMiddleware())
	adminGroup.Get("/regularizations/pending", regularizationHandler.Pending)
	adminGroup.Put("/regularizations/:id/approve", regularizationHandler.Approve)
	adminGroup.Put("/regularizations/:id/reject", regularizationHandler.Reject)
	adminGroup.Get("/attendance/calendar", attendanceHandler.AdminCalendar)
	adminGroup.Get("/employees", employeeHandler.List)
	adminGroup.Post("/employees", employeeHandler.Create)
	adminGroup.Put("/employees/:code", employeeHandler.Update)
	adminGroup.Get("/ip-config", ipHandler.GetConfig)
	adminGroup.Put("/ip-config", ipHandler.UpdateConfig)
	adminGroup.Get("/reported-ips", ipHandler.ListReported)
	adminGroup.Delete("/reported-ips", ipHandler.ClearReported)
	adminGroup.Post("/holidays", holidayHandler.Create)
	adminGroup.Delete("/holidays/:id", holidayHandler.Delete)
	adminGroup.Delete("/posts/:id", postHandler.Delete)

	log.Println("All application routes registered.")
	log.Println("Swagger documentation available at: /docs/index.html")
}
