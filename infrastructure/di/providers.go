package di

import (
	"memory-gateway/application/services"
	"memory-gateway/infrastructure/config"
	"memory-gateway/infrastructure/engine"
	"memory-gateway/infrastructure/persistence/memory"
	"memory-gateway/interfaces/http/rest"
	"memory-gateway/pkg/auth"

	"github.com/google/wire"
	"go.uber.org/zap"
)

// Container holds the application's wired dependencies
type Container struct {
	Config       *config.Config
	Logger       *zap.Logger
	NoteStore    *memory.NoteStore
	NoteService  *services.NoteService
	EngineClient *engine.Client
	JWTValidator *auth.JWTValidator
	Router       *rest.Router
}

// ProviderSet is the wire provider set for the gateway
var ProviderSet = wire.NewSet(
	ProvideLogger,
	ProvideNoteStore,
	ProvideNoteService,
	ProvideEngineClient,
	ProvideJWTValidator,
	ProvideRouter,
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideNoteStore creates the in-process note store. It is constructed
// once at process start and injected, never a package-level singleton, so
// tests can instantiate isolated stores.
func ProvideNoteStore(logger *zap.Logger) *memory.NoteStore {
	return memory.NewNoteStore(logger)
}

// ProvideNoteService creates the note service
func ProvideNoteService(store *memory.NoteStore, logger *zap.Logger) *services.NoteService {
	return services.NewNoteService(store, logger)
}

// ProvideEngineClient creates the retrieval engine client
func ProvideEngineClient(cfg *config.Config, logger *zap.Logger) *engine.Client {
	return engine.NewClient(cfg.EngineURL, cfg.EngineTimeout, logger)
}

// ProvideJWTValidator creates the bearer token validator
func ProvideJWTValidator(cfg *config.Config) (*auth.JWTValidator, error) {
	secret := cfg.JWTSecret
	if secret == "" {
		// Development fallback only; production config requires a secret.
		secret = "development-secret-change-in-production"
	}
	return auth.NewJWTValidator(auth.JWTConfig{
		SecretKey: secret,
		Issuer:    cfg.JWTIssuer,
		Audience:  []string{cfg.JWTAudience},
	})
}

// ProvideRouter creates the HTTP router
func ProvideRouter(
	cfg *config.Config,
	noteService *services.NoteService,
	engineClient *engine.Client,
	validator *auth.JWTValidator,
	logger *zap.Logger,
) *rest.Router {
	return rest.NewRouter(cfg, noteService, engineClient, validator, logger)
}
