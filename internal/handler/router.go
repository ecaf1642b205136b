package handler

import (
	"net/http"

	"legal-ai-analyzer/internal/config"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(container *config.Container) http.Handler {
	router := mux.NewRouter()

	// Initialize handlers
	documentHandler := NewDocumentHandler(container.SessionStore, container.Config, container.Logger)
	analysisHandler := NewAnalysisHandler(container.AnalysisService, container.Config, container.Logger)
	chatHandler := NewChatHandler(container.ChatService, container.Logger)

	router.HandleFunc("/", rootHandler).Methods("GET")
	router.HandleFunc("/health", healthHandler).Methods("GET")
	router.HandleFunc("/upload", documentHandler.Upload).Methods("POST")
	router.HandleFunc("/chat", chatHandler.Chat).Methods("POST")
	router.HandleFunc("/analyze/", analysisHandler.Analyze).Methods("POST")

	// Configure CORS. The frontend is served from arbitrary origins.
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
		},
		MaxAge: 300,
	})

	return c.Handler(router)
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Welcome to the Legal AI Analyzer API!"})
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok","service":"legal-ai-analyzer"}`))
}
