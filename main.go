// main.go - Entry point for the admin console backend

package main // Declares the package name

import ( // Import required packages
	"go-admin-backend/auth"       // Token service
	"go-admin-backend/config"     // Project config management
	"go-admin-backend/database"   // Database connection and setup
	"go-admin-backend/handlers"   // HTTP handlers for API endpoints
	"go-admin-backend/middleware" // Middleware (session gate, admin filter)
	"log"                         // Logging

	"github.com/gin-gonic/gin" // Gin web framework
)

func main() { // Main function, program entry point
	// STEP 1: Load configuration and establish connections
	cfg := config.Load() // Load configuration (DB path, JWT secret, port)

	if err := database.Connect(cfg.DBPath); err != nil { // Connect to the database
		log.Fatal("DB connection error: ", err) // If error, log and exit
	}

	tokens := auth.NewService(cfg.JWTSecret) // Token service built around the shared signing secret

	// STEP 2: Create Gin router and configure routes
	r := gin.Default() // Create a new Gin router (web server)

	// The session gate classifies every navigational request
	r.Use(middleware.SessionGate(tokens))

	// Public pages (gated by the session gate, not by role)
	r.GET("/login", handlers.LoginPage)
	r.GET("/", handlers.HomePage)
	r.GET("/case-studies/:slug", handlers.CaseStudyPage)

	// Auth routes (no authentication required)
	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("/login", handlers.Login(cfg, tokens))
		authRoutes.POST("/logout", handlers.Logout(cfg))
		authRoutes.POST("/update-credentials", handlers.UpdateCredentials(cfg))
	}

	// Admin routes (require a valid token resolving to a stored admin role)
	admin := r.Group("/admin")
	admin.Use(middleware.AdminRequired(tokens)) // Apply the admin authorization filter
	{
		admin.GET("/users", handlers.ListUsers(cfg))
		admin.POST("/users", handlers.CreateUser(cfg))
		admin.PUT("/users/:id", handlers.UpdateUser(cfg))
		admin.DELETE("/users/:id", handlers.DeactivateUser(cfg))
	}

	// STEP 3: Start the web server
	r.Run(":" + cfg.Port) // Start the web server on the configured port
}
