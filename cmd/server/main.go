package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/langdrift/backend/internal/auth"
	"github.com/langdrift/backend/internal/confusion"
	"github.com/langdrift/backend/internal/database"
	"github.com/langdrift/backend/internal/evaluations"
	"github.com/langdrift/backend/internal/middleware"
	"github.com/langdrift/backend/internal/probe"
	"github.com/rs/cors"
)

func main() {
	// Initialize database
	db, err := database.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Scoring engine; the lexicon loads once here, the language model and
	// segmenters load lazily on first use.
	calc := confusion.NewCalculator(confusion.Config{})

	// Initialize handlers
	authHandler := auth.NewHandler(db)
	evalStore := evaluations.NewStore(db)
	evalService := evaluations.NewService(evalStore, calc)
	evalHandler := evaluations.NewHandler(evalService)
	probeService := probe.NewService(evalService, evalStore)
	probeHandler := probe.NewHandler(probeService)

	// Setup router
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	api.HandleFunc("/score", evalHandler.Score).Methods("POST")
	api.HandleFunc("/analyze", evalHandler.Analyze).Methods("POST")

	// Protected routes
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.AuthMiddleware)
	protected.HandleFunc("/auth/me", authHandler.GetCurrentUser).Methods("GET")
	protected.HandleFunc("/evaluations", evalHandler.Create).Methods("POST")
	protected.HandleFunc("/evaluations", evalHandler.List).Methods("GET")
	protected.HandleFunc("/evaluations/{id:[0-9]+}", evalHandler.Get).Methods("GET")
	protected.HandleFunc("/probes", probeHandler.Run).Methods("POST")

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
