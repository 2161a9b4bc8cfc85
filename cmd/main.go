package main

import (
	fiber "github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"

	"github.com/madenai/arqflow/config"
	"github.com/madenai/arqflow/internal/api/v1/middleware"
	"github.com/madenai/arqflow/internal/db"
	"github.com/madenai/arqflow/internal/db/repos"
	"github.com/madenai/arqflow/internal/external"
	"github.com/madenai/arqflow/internal/logger"
	"github.com/madenai/arqflow/internal/payments"
	"github.com/madenai/arqflow/internal/services"
	"github.com/madenai/arqflow/pkg/api/v1/handlers"
	"github.com/madenai/arqflow/pkg/api/v1/routes"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Warn("No .env file found, using environment variables")
	}

	logger.InitializeAndConfigure()

	database, err := db.New(db.Options{
		Host:     config.GetEnv("DB_HOST", db.DefaultHost),
		User:     config.GetEnv("DB_USER", db.DefaultUser),
		Password: config.GetEnv("DB_PASSWORD", db.DefaultPassword),
		DBName:   config.GetEnv("DB_NAME", db.DefaultDBName),
		Port:     config.GetEnvInt("DB_PORT", db.DefaultPort),
	})
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	// Repositories
	userRepo := repos.NewUserRepository(database)
	projectRepo := repos.NewProjectRepository(database)
	budgetItemRepo := repos.NewBudgetItemRepository(database)
	scheduleTaskRepo := repos.NewScheduleTaskRepository(database)
	paymentRepo := repos.NewPaymentRepository(database)
	subscriptionRepo := repos.NewSubscriptionRepository(database)
	alertRepo := repos.NewAlertRepository(database)
	usageRepo := repos.NewAIUsageRepository(database)

	// External service clients
	var geoClient *external.GeoIPClient
	if geoURL := config.GetEnv("GEOIP_SERVICE_URL", ""); geoURL != "" {
		geoClient = external.NewGeoIPClient(geoURL)
	}
	var assistantClient *external.AssistantClient
	if assistantURL := config.GetEnv("ASSISTANT_SERVICE_URL", ""); assistantURL != "" {
		assistantClient = external.NewAssistantClient(assistantURL, config.GetEnv("ASSISTANT_API_KEY", ""))
	}
	webhookClient := external.NewWebhookClient(config.GetEnv("AUTOMATION_WEBHOOK_URL", ""))

	gateway, err := payments.NewMercadoPagoGateway(config.GetEnv("MERCADOPAGO_ACCESS_TOKEN", ""))
	if err != nil {
		logger.Fatalf("Failed to initialize payment gateway: %v", err)
	}

	// Services
	userService := services.NewUserService(userRepo, geoClient)
	projectService := services.NewProjectService(projectRepo, budgetItemRepo, scheduleTaskRepo, webhookClient)
	budgetService := services.NewBudgetService(projectRepo, budgetItemRepo, webhookClient)
	scheduleService := services.NewScheduleService(projectRepo, scheduleTaskRepo)
	assistantService := services.NewAssistantService(assistantClient, projectRepo, subscriptionRepo, usageRepo, usageRepo)
	paymentService := services.NewPaymentService(paymentRepo, gateway, webhookClient)
	adminService := services.NewAdminService(userRepo, projectRepo, paymentRepo, subscriptionRepo, usageRepo, alertRepo)

	// Handlers
	apiHandler := handlers.NewAPIHandler(
		userService,
		projectService,
		budgetService,
		scheduleService,
		assistantService,
		paymentService,
		adminService,
	)
	authHandler := handlers.NewAuthHandler(apiHandler)
	paymentHandler := handlers.NewPaymentHandler(apiHandler)
	adminHandler := handlers.NewAdminHandler(apiHandler)
	rpcHandler := handlers.NewRPCHandler(apiHandler)

	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})
	app.Use(middleware.Logger())

	routes.RegisterRoutes(
		app,
		authHandler,
		paymentHandler,
		adminHandler,
		rpcHandler,
		middleware.RequireAuth(),
		middleware.RequireAdmin(),
	)

	port := config.GetEnv("PORT", routes.DefaultPort)
	logger.Infof("Starting API server on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		logger.Fatalf("Server stopped: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}
