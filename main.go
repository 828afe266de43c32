package main

//go:generate swag init

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	"finboard/db"
	_ "finboard/docs"
	"finboard/handlers"
)

//go:embed static/*
var staticFiles embed.FS

// @title           Finboard API
// @version         1.0.0
// @description     Personal finance tracker: accounts, transactions, budgets, goals, and monthly analytics.
// @host            localhost:8080
// @BasePath        /api
// @securityDefinitions.basic  BasicAuth

func main() {
	// .env is optional; real env vars win
	_ = godotenv.Load()

	// Configure structured logging
	level := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	// Open database
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/finance.db"
	}
	database, err := db.Open(dbPath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	// Run migrations
	if err := db.Migrate(database); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	api := handlers.NewAPI(db.NewStore(database))

	// Router setup
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// API routes with optional basic auth
	r.Route("/api", func(r chi.Router) {
		r.Use(handlers.BasicAuth)

		// Transactions
		r.Get("/transactions", api.ListTransactions)
		r.Post("/transactions", api.CreateTransaction)
		r.Delete("/transactions/{id}", api.DeleteTransaction)

		// Budgets
		r.Get("/budgets", api.ListBudgets)
		r.Post("/budgets", api.CreateBudget)

		// Accounts
		r.Get("/accounts", api.ListAccounts)
		r.Post("/accounts", api.CreateAccount)
		r.Put("/accounts/{id}", api.UpdateAccount)
		r.Delete("/accounts/{id}", api.DeleteAccount)

		// Goals
		r.Get("/goals", api.ListGoals)
		r.Post("/goals", api.CreateGoal)
		r.Put("/goals/{id}", api.UpdateGoalProgress)

		// Analytics
		r.Get("/analytics/summary", api.GetSummary)
		r.Get("/analytics/chart-data", api.GetChartData)

		// Data management
		r.Delete("/data/wipe", api.WipeData)
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Serve the static dashboard shell
	staticFS, _ := fs.Sub(staticFiles, "static")
	r.Handle("/*", http.FileServer(http.FS(staticFS)))

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := fmt.Sprintf(":%s", port)
	slog.Info("server starting", "address", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
