package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/SrChaoz/financeApp-sub000/config"
	"github.com/SrChaoz/financeApp-sub000/database"
	"github.com/SrChaoz/financeApp-sub000/handlers"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	// Connect to Database
	database.ConnectDB(cfg.DatabaseURL)

	handlers.Configure(cfg)

	// Initialize Fiber app
	app := fiber.New()

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	registerRoutes(app)

	log.Fatal(app.Listen(":" + cfg.Port))
}

func registerRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	// Health Check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Auth
	api.Post("/auth/register", handlers.Register)
	api.Post("/auth/login", handlers.Login)

	// Everything below requires a valid token
	auth := api.Use(handlers.Protected())

	auth.Get("/profile", handlers.GetProfile)
	auth.Put("/profile", handlers.UpdateProfile)

	auth.Get("/accounts", handlers.ListAccounts)
	auth.Post("/accounts", handlers.CreateAccount)
	auth.Get("/accounts/:id", handlers.GetAccount)
	auth.Put("/accounts/:id", handlers.UpdateAccount)
	auth.Delete("/accounts/:id", handlers.DeleteAccount)

	auth.Get("/transactions", handlers.ListTransactions)
	auth.Post("/transactions", handlers.CreateTransaction)
	auth.Put("/transactions/:id", handlers.UpdateTransaction)
	auth.Delete("/transactions/:id", handlers.DeleteTransaction)

	auth.Get("/budgets", handlers.ListBudgets)
	auth.Post("/budgets", handlers.CreateBudget)
	auth.Get("/budgets/:id", handlers.GetBudget)
	auth.Put("/budgets/:id", handlers.UpdateBudget)
	auth.Delete("/budgets/:id", handlers.DeleteBudget)

	auth.Get("/goals", handlers.ListGoals)
	auth.Post("/goals", handlers.CreateGoal)
	auth.Get("/goals/:id", handlers.GetGoal)
	auth.Put("/goals/:id", handlers.UpdateGoal)
	auth.Delete("/goals/:id", handlers.DeleteGoal)
	auth.Post("/goals/:id/add", handlers.AddToGoal)
	auth.Post("/goals/:id/complete", handlers.CompleteGoal)

	auth.Get("/reminders", handlers.ListReminders)
	auth.Get("/reminders/upcoming", handlers.UpcomingReminders)
	auth.Post("/reminders", handlers.CreateReminder)
	auth.Put("/reminders/:id", handlers.UpdateReminder)
	auth.Delete("/reminders/:id", handlers.DeleteReminder)

	auth.Get("/stats", handlers.GetStats)

	// Offline outbox drain
	auth.Post("/sync", handlers.BatchSync)

	// AI spending commentary
	auth.Get("/insights", handlers.SpendingInsights)
}
