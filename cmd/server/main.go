package main

import (
	"log"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"fwfps/internal/config"
	"fwfps/internal/constants"
	"fwfps/internal/database"
	"fwfps/internal/handlers"
	"fwfps/internal/middleware"
	"fwfps/internal/repository"
	"fwfps/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database and run migrations
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories and services
	userRepo := repository.NewUserRepository(db)
	workplanRepo := repository.NewWorkplanRepository(db)
	operationRepo := repository.NewOperationRepository(db)

	authService := services.NewAuthService(userRepo)
	workplanService := services.NewWorkplanService(workplanRepo)
	operationService := services.NewOperationService(operationRepo)

	authHandler := handlers.NewAuthHandler(authService)
	workplanHandler := handlers.NewWorkplanHandler(workplanService)
	pacHandler := handlers.NewPacHandler(operationService)

	// Initialize Gin router
	r := gin.Default()
	r.Use(middleware.CORS(cfg.CORSOrigins))

	// Session middleware with a cookie store; demo-grade auth by design
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   cfg.GinMode == "release",
		SameSite: 2, // SameSite=Lax
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Health check endpoint
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":    "healthy",
			"message":   "FWFPS Backend API is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	// API routes
	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/profile", middleware.RequireAuth(), authHandler.GetProfile)
			auth.GET("/users", authHandler.ListUsers)
			auth.POST("/register", authHandler.Register)
		}

		workplans := api.Group("/workplans")
		{
			workplans.GET("", workplanHandler.ListWorkplans)
			workplans.POST("", workplanHandler.CreateWorkplan)
			workplans.GET("/dashboard", workplanHandler.Dashboard)
			workplans.GET("/:id", workplanHandler.GetWorkplan)
			workplans.PUT("/:id", workplanHandler.UpdateWorkplan)
			workplans.DELETE("/:id", workplanHandler.DeleteWorkplan)
			workplans.GET("/:id/tasks", workplanHandler.ListTasks)
			workplans.POST("/:id/tasks", workplanHandler.CreateTask)
			workplans.PUT("/:id/tasks/:task_id", workplanHandler.UpdateTask)
			workplans.DELETE("/:id/tasks/:task_id", workplanHandler.DeleteTask)
		}

		pac := api.Group("/pac")
		{
			pac.GET("/operations", pacHandler.ListOperations)
			pac.POST("/operations", pacHandler.CreateOperation)
			pac.GET("/operations/:id", pacHandler.GetOperation)
			pac.PUT("/operations/:id", pacHandler.UpdateOperation)
			pac.DELETE("/operations/:id", pacHandler.DeleteOperation)
			pac.GET("/operations/:id/samples", pacHandler.ListSamples)
			pac.POST("/operations/:id/samples", pacHandler.CreateSample)
			pac.PUT("/operations/:id/samples/:sample_id", pacHandler.UpdateSample)
			pac.DELETE("/operations/:id/samples/:sample_id", pacHandler.DeleteSample)
			pac.GET("/dashboard", pacHandler.Dashboard)
			pac.GET("/types", pacHandler.GetOperationTypes)
			pac.GET("/statuses", pacHandler.GetStatuses)
			pac.GET("/priorities", pacHandler.GetPriorities)
		}
	}

	// Start server
	addr := ":" + cfg.Port
	log.Printf("FWFPS backend starting on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
