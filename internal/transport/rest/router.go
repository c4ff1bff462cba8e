package rest

import (
	"net/http"

	"github.com/gorilla/mux"

	"dumbuddy/internal/config"
	"dumbuddy/internal/game"
	"dumbuddy/internal/service"
	"dumbuddy/internal/transport/rest/handler"
	"dumbuddy/internal/transport/rest/middleware"
)

// Container holds all dependencies for the router.
type Container struct {
	Config      *config.Config
	Registry    *game.Registry
	Generator   *service.GeneratorService
	Analytics   *service.AnalyticsService
	AuthService *service.AuthService
}

// NewRouter creates the API router with all endpoints.
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	authHandler := handler.NewAuthHandler(c.AuthService)
	roomHandler := handler.NewRoomHandler(c.Registry, c.Generator, c.Analytics)
	questionsHandler := handler.NewQuestionsHandler(c.Generator)
	analyticsHandler := handler.NewAnalyticsHandler(c.Analytics)

	authMW := middleware.NewAuthMiddleware(c.AuthService)

	r.Use(corsMiddleware(c.Config))

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	v1 := r.PathPrefix("/v1").Subrouter()

	// Game routes; mutations are guarded by the per-room host key, not JWT.
	v1.HandleFunc("/rooms", roomHandler.Create).Methods("POST", "OPTIONS")
	v1.HandleFunc("/rooms/{roomId}", roomHandler.Get).Methods("GET", "OPTIONS")
	v1.HandleFunc("/rooms/{roomId}", roomHandler.Act).Methods("POST", "OPTIONS")
	v1.HandleFunc("/rooms/{roomId}/join", roomHandler.Join).Methods("POST", "OPTIONS")
	v1.HandleFunc("/ai-questions", questionsHandler.Generate).Methods("POST", "OPTIONS")
	v1.HandleFunc("/analytics/events", analyticsHandler.ReportEvent).Methods("POST", "OPTIONS")
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")

	// Admin dashboard routes (require admin JWT)
	adminRoutes := v1.PathPrefix("/admin").Subrouter()
	adminRoutes.Use(authMW.RequireAdmin)
	adminRoutes.HandleFunc("/summary", analyticsHandler.Summary).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/events", analyticsHandler.Events).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(cfg *config.Config) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", cfg.CORSAllowedOrigins)
			w.Header().Set("Access-Control-Allow-Methods", cfg.CORSAllowedMethods)
			w.Header().Set("Access-Control-Allow-Headers", cfg.CORSAllowedHeaders)

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
