package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/studyloop/backend/internal/auth"
	"github.com/studyloop/backend/internal/database"
	"github.com/studyloop/backend/internal/generator"
	"github.com/studyloop/backend/internal/kvstore"
	"github.com/studyloop/backend/internal/middleware"
	"github.com/studyloop/backend/internal/reminder"
	"github.com/studyloop/backend/internal/revision"
)

func main() {
	// Optional .env for local development
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	// Initialize database
	db, err := database.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize services and handlers
	kv := kvstore.NewPostgres(db)
	revisionStore := revision.NewStore(kv)
	revisionService := revision.NewService(revisionStore)
	revisionHandler := revision.NewHandler(revisionService)

	authHandler := auth.NewHandler(db)

	gen := generator.NewGenerator()
	availability := generator.NewAvailability()
	generatorHandler := generator.NewHandler(gen, availability)

	// Daily due-revision digest
	reminders := reminder.New(db, revisionService)
	reminders.Start()
	defer reminders.Stop()

	// Setup router
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	// Protected routes
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.AuthMiddleware)
	protected.HandleFunc("/auth/me", authHandler.GetCurrentUser).Methods("GET")
	protected.HandleFunc("/diagnostics", revisionHandler.SubmitDiagnostic).Methods("POST")
	protected.HandleFunc("/diagnostics/generate", generatorHandler.GenerateQuiz).Methods("POST")
	protected.HandleFunc("/revisions/due", revisionHandler.DueRevisions).Methods("GET")
	protected.HandleFunc("/revisions/{id}/complete", revisionHandler.CompleteRevision).Methods("POST")
	protected.HandleFunc("/dashboard/stats", revisionHandler.DashboardStats).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	handler := c.Handler(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
