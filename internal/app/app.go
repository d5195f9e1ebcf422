package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"

	"github.com/folio-dev/portfolio-api/internal/config"
	"github.com/folio-dev/portfolio-api/internal/constants"
	"github.com/folio-dev/portfolio-api/internal/database"
	"github.com/folio-dev/portfolio-api/internal/handlers"
	"github.com/folio-dev/portfolio-api/internal/mailer"
	"github.com/folio-dev/portfolio-api/internal/objectstore"
	"github.com/folio-dev/portfolio-api/internal/repository"
	"github.com/folio-dev/portfolio-api/internal/services"
)

// App holds the store and services shared by the server and the CLI.
type App struct {
	Config *config.Config
	Store  *repository.Store

	GitHub    *services.GitHubService
	AI        *services.AIService
	Portfolio *services.PortfolioService
	Sync      *services.SyncService
	Contact   *services.ContactService
	Accounts  *services.AccountService

	closers []func()
}

// New opens the configured store, seeds it and wires every service.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	a := &App{Config: cfg}

	store, err := a.openStore()
	if err != nil {
		return nil, err
	}
	a.Store = store

	a.GitHub = services.NewGitHubService(cfg.GitHubAPIURL, cfg.GitHubToken, cfg.HTTPTimeout)
	a.AI = services.NewAIService(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL)
	if !a.AI.Configured() {
		slog.Warn("OpenAI API key not configured, project images are disabled")
	}

	a.Portfolio = services.NewPortfolioService(store)
	a.Sync = services.NewSyncService(a.GitHub, a.AI, a.imageMirror(ctx), store.Projects, services.SyncOptions{
		GenerateImages: cfg.SyncGenerateImages,
		AIAnalysis:     cfg.SyncAIAnalysis,
	})
	a.Contact = services.NewContactService(a.contactMailer())
	a.Accounts = services.NewAccountService(store.Users)

	if err := a.bootstrapAdmin(); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

func (a *App) openStore() (*repository.Store, error) {
	cfg := a.Config
	if cfg.StoreDriver == config.StoreMemory {
		store := repository.NewMemoryStore()
		if err := repository.Seed(store); err != nil {
			return nil, fmt.Errorf("failed to seed store: %w", err)
		}
		slog.Info("using in-memory store")
		return store, nil
	}

	db, err := database.Open(cfg)
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}
	a.closers = append(a.closers, func() { _ = sqlDB.Close() })

	if err := database.Migrate(db); err != nil {
		a.Close()
		return nil, err
	}

	store := repository.NewGormStore(db)
	seeded, err := repository.SeedIfEmpty(store)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to seed store: %w", err)
	}
	if seeded {
		slog.Info("seeded empty database with portfolio content")
	}
	return store, nil
}

// imageMirror returns nil unless MinIO is configured and reachable.
func (a *App) imageMirror(ctx context.Context) services.ImageMirror {
	if !a.Config.MinIO.Enabled() {
		return nil
	}
	mirror, err := objectstore.New(a.Config.MinIO, a.Config.HTTPTimeout)
	if err != nil {
		slog.Warn("image mirroring disabled", "error", err)
		return nil
	}
	if err := mirror.EnsureBucket(ctx); err != nil {
		slog.Warn("MinIO endpoint is not available, image mirroring disabled", "error", err)
		return nil
	}
	return mirror
}

func (a *App) contactMailer() services.Mailer {
	if !a.Config.SMTP.Enabled() {
		return nil
	}
	return mailer.NewSMTPMailer(a.Config.SMTP)
}

func (a *App) bootstrapAdmin() error {
	if a.Config.AdminUsername == "" || a.Config.AdminPassword == "" {
		return nil
	}
	user, created, err := a.Accounts.EnsureUser(services.RegisterInput{
		Username: a.Config.AdminUsername,
		Password: a.Config.AdminPassword,
	})
	if err != nil {
		return fmt.Errorf("failed to bootstrap admin account: %w", err)
	}
	if created {
		slog.Info("created admin account", "username", user.Username)
	}
	return nil
}

// Router returns the gin engine serving the API.
func (a *App) Router() *gin.Engine {
	return handlers.NewRouter(handlers.Dependencies{
		Portfolio: a.Portfolio,
		Sync:      a.Sync,
		Contact:   a.Contact,
		GitHub:    a.GitHub,
	})
}

// Handler returns the router wrapped with CORS handling.
func (a *App) Handler() http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: a.Config.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", constants.HeaderRequestID},
		ExposedHeaders: []string{constants.HeaderRequestID},
	}).Handler(a.Router())
}

// Close releases the store.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
