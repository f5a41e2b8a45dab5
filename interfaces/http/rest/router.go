package rest

import (
	"net/http"

	"memory-gateway/application/services"
	"memory-gateway/infrastructure/config"
	"memory-gateway/infrastructure/engine"
	"memory-gateway/interfaces/http/rest/handlers"
	"memory-gateway/interfaces/http/rest/middleware"
	"memory-gateway/pkg/auth"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Router creates and configures the HTTP router
type Router struct {
	cfg          *config.Config
	noteService  *services.NoteService
	engineClient *engine.Client
	validator    *auth.JWTValidator
	logger       *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	cfg *config.Config,
	noteService *services.NoteService,
	engineClient *engine.Client,
	validator *auth.JWTValidator,
	logger *zap.Logger,
) *Router {
	return &Router{
		cfg:          cfg,
		noteService:  noteService,
		engineClient: engineClient,
		validator:    validator,
		logger:       logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(middleware.Recover(rt.logger))
	router.Use(middleware.Logger(rt.logger))

	// Cross-origin access is restricted to the one trusted browser origin,
	// with credentials allowed.
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{rt.cfg.CORSOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check, explicitly exempt from authentication
	router.Get("/health", rt.healthCheck)

	ipLimiter := auth.NewIPRateLimiter(rt.cfg.IPRateLimit)
	userLimiter := auth.NewUserRateLimiter(rt.cfg.UserRateLimit)
	authenticate := middleware.Authenticate(rt.validator, ipLimiter, userLimiter, rt.logger)

	// Protected routes: identity resolution happens before any handler
	// logic, store call or upstream call.
	router.Group(func(r chi.Router) {
		r.Use(authenticate)

		userHandler := handlers.NewUserHandler(rt.logger)
		r.Get("/user", userHandler.GetUser)

		// Local note CRUD
		r.Route("/notes", func(r chi.Router) {
			noteHandler := handlers.NewNoteHandler(rt.noteService, rt.logger)
			r.Post("/", noteHandler.CreateNote)
			r.Get("/", noteHandler.ListNotes)
			r.Get("/{noteID}", noteHandler.GetNote)
			r.Put("/{noteID}", noteHandler.UpdateNote)
			r.Delete("/{noteID}", noteHandler.DeleteNote)
		})

		// Retrieval/chat and cross-service note operations, forwarded to
		// the engine with the resolved identity attached.
		r.Route("/api", func(r chi.Router) {
			proxyHandler := handlers.NewProxyHandler(rt.engineClient, rt.logger)
			r.Post("/notes", proxyHandler.CreateNote)
			r.Get("/notes", proxyHandler.ListNotes)
			r.Get("/notes/{noteID}", proxyHandler.GetNote)
			r.Put("/notes/{noteID}", proxyHandler.UpdateNote)
			r.Delete("/notes/{noteID}", proxyHandler.DeleteNote)
			r.Post("/query", proxyHandler.Query)
			r.Post("/query-retriever", proxyHandler.QueryRetriever)
		})
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok","message":"Memory gateway is running"}`))
}
