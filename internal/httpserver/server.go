package httpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/fitforge/fitforge-api/internal/ai"
	"github.com/fitforge/fitforge-api/internal/auth"
	"github.com/fitforge/fitforge-api/internal/blob"
	"github.com/fitforge/fitforge-api/internal/config"
	"github.com/fitforge/fitforge-api/internal/plans"
	"github.com/fitforge/fitforge-api/internal/profiles"
	"github.com/fitforge/fitforge-api/internal/reports"
	"github.com/fitforge/fitforge-api/internal/storage"
	"github.com/fitforge/fitforge-api/internal/storage/memory"
	"github.com/fitforge/fitforge-api/internal/storage/postgres"
)

// Server is the HTTP server wiring config, storage and services.
type Server struct {
	config         *config.Config
	mux            *http.ServeMux
	storage        storage.Storage
	authMiddleware *auth.Middleware
}

func New(cfg *config.Config) *Server {
	s := &Server{
		config: cfg,
		mux:    http.NewServeMux(),
	}

	s.initStorage()
	s.routes()
	return s
}

// initStorage picks Postgres when DATABASE_URL is configured, with a
// fallback to in-memory storage when the connection fails.
func (s *Server) initStorage() {
	if s.config.DatabaseURL == "" {
		log.Println("storage: using in-memory storage")
		s.storage = memory.New()
		return
	}

	log.Println("storage: connecting to PostgreSQL...")
	pgStorage, err := postgres.New(context.Background(), s.config.DatabaseURL)
	if err != nil {
		log.Printf("storage: PostgreSQL connection failed: %v", err)
		log.Println("storage: falling back to in-memory storage")
		s.storage = memory.New()
		return
	}

	log.Println("storage: PostgreSQL connected")
	s.storage = pgStorage
}

func (s *Server) routes() {
	// Health check (no auth required)
	s.mux.HandleFunc("/healthz", s.handleHealthz)

	// Auth API (no auth required)
	authService := auth.NewService(s.config)
	authHandler := auth.NewHandler(s.config, authService)
	s.authMiddleware = auth.NewMiddleware(s.config, authService)

	// POST /v1/auth/dev - local dev token
	s.mux.HandleFunc("POST /v1/auth/dev", authHandler.HandleDevAuth)

	// Raw response archive, disabled unless BLOB_MODE is set.
	archiveStore, blobMode, err := blob.NewBlobStore(s.config.Blob, log.Default())
	if err != nil {
		log.Fatalf("blob store initialization failed: %v", err)
	}
	log.Printf("blob: archive mode=%s", blobMode)

	// Plans API
	aiProvider := ai.NewProvider(s.config)
	planService := plans.NewService(aiProvider, s.storage, archiveStore)
	planHandler := plans.NewHandler(planService)

	// POST /v1/plans/generate - generate a new weekly plan
	s.mux.HandleFunc("POST /v1/plans/generate", planHandler.HandleGenerate)

	// GET /v1/plans/last - last generated plan
	s.mux.HandleFunc("GET /v1/plans/last", planHandler.HandleGetLast)

	// GET /v1/plans/last/week - last plan grouped by day
	s.mux.HandleFunc("GET /v1/plans/last/week", planHandler.HandleGetLastWeek)

	// GET /v1/plans/last/raw - archived model response (debug)
	s.mux.HandleFunc("GET /v1/plans/last/raw", planHandler.HandleGetLastRaw)

	// DELETE /v1/plans/last - discard last plan
	s.mux.HandleFunc("DELETE /v1/plans/last", planHandler.HandleDeleteLast)

	// Profile API
	profileService := profiles.NewService(s.storage)
	profileHandler := profiles.NewHandler(profileService)

	// GET /v1/profile - last submitted profile
	s.mux.HandleFunc("GET /v1/profile", profileHandler.HandleGet)

	// PUT /v1/profile - save profile for pre-fill
	s.mux.HandleFunc("PUT /v1/profile", profileHandler.HandlePut)

	// Reports API
	reportsHandler := reports.NewHandler(planService, reports.NewGenerator())

	// GET /v1/reports/week - weekly plan export (pdf|csv)
	s.mux.HandleFunc("GET /v1/reports/week", reportsHandler.HandleGetWeek)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status": "ok",
	})
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.config.Port)

	// Middleware chain (outermost first): CORS -> Rate Limit -> Auth -> Router
	var handler http.Handler = s.mux
	if s.authMiddleware != nil && s.config.AuthMode != config.AuthModeNone {
		if s.config.AuthRequired {
			handler = s.authMiddleware.RequireAuth(handler)
		} else {
			handler = s.authMiddleware.OptionalAuth(handler)
		}
	}
	handler = RateLimitMiddleware(s.config, handler)
	handler = CORSMiddleware(s.config, handler)

	log.Printf("Server listening on http://localhost%s", addr)
	log.Printf("Health check: http://localhost%s/healthz", addr)
	log.Printf("Plans API: http://localhost%s/v1/plans/generate", addr)

	return http.ListenAndServe(addr, handler)
}

func (s *Server) Close() error {
	if s.storage != nil {
		return s.storage.Close()
	}
	return nil
}
