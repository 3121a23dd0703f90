package main

import (
	"fmt"
	"net/http"
	"os"

	"expensely/internal/config"
	"expensely/internal/database"
	"expensely/internal/handlers"
	"expensely/internal/llm"
	"expensely/internal/logger"
	"expensely/internal/middleware"
	"expensely/internal/services"
	"expensely/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "expensely/internal/docs" // Import swagger docs
)

// @title           Expensely API
// @version         1.0
// @description     Expensely is a personal expense tracker with period budgets, expense templates, per-category summaries and natural-language entry.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(appConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom validation tags
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	budgetService := services.NewBudgetService(db)
	expenseService := services.NewExpenseService(db)
	expenseTypeService := services.NewExpenseTypeService(db)
	templateService := services.NewTemplateService(db)
	summaryService := services.NewSummaryService(db)

	llmClient := llm.NewClient(appConfig.LLMBaseURL, appConfig.LLMAPIKey, appConfig.LLMModel, appConfig.LLMTimeout)
	parseService := services.NewParseService(llmClient)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	budgetHandler := handlers.NewBudgetHandler(budgetService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	expenseTypeHandler := handlers.NewExpenseTypeHandler(expenseTypeService)
	templateHandler := handlers.NewTemplateHandler(templateService)
	summaryHandler := handlers.NewSummaryHandler(summaryService)
	parseHandler := handlers.NewParseHandler(parseService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// User profile
	protected.GET("/profile", authHandler.GetProfile)

	// Expense routes
	expenses := protected.Group("/expenses")
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.GET("", expenseHandler.GetExpenses)
	expenses.GET("/:id", expenseHandler.GetExpense)
	expenses.PUT("/:id", expenseHandler.UpdateExpense)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)

	// Expense type routes
	expenseTypes := protected.Group("/expense-types")
	expenseTypes.POST("", expenseTypeHandler.CreateExpenseType)
	expenseTypes.GET("", expenseTypeHandler.GetExpenseTypes)
	expenseTypes.PUT("/:id", expenseTypeHandler.UpdateExpenseType)
	expenseTypes.DELETE("/:id", expenseTypeHandler.DeleteExpenseType)

	// Template routes
	templates := protected.Group("/templates")
	templates.POST("", templateHandler.CreateTemplate)
	templates.GET("", templateHandler.GetTemplates)
	templates.PUT("/:id", templateHandler.UpdateTemplate)
	templates.DELETE("/:id", templateHandler.DeleteTemplate)
	templates.POST("/:id/apply", templateHandler.ApplyTemplate)

	// Budget routes
	budgets := protected.Group("/budgets")
	budgets.PUT("", budgetHandler.SetBudget)
	budgets.GET("", budgetHandler.GetBudgets)
	budgets.DELETE("/:id", budgetHandler.DeleteBudget)

	// Summary and natural-language parsing
	protected.GET("/summary", summaryHandler.GetSummary)
	protected.POST("/parse", parseHandler.Parse)

	log.Infof("Starting Expensely backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
