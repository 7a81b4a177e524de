package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"careerhub-backend/internal/analyses"
	"careerhub-backend/internal/careers"
	"careerhub-backend/internal/extract"
	"careerhub-backend/internal/interactions"
	"careerhub-backend/internal/learning"
	"careerhub-backend/internal/llm"
	"careerhub-backend/internal/llm/gemini"
	"careerhub-backend/internal/profiles"
	"careerhub-backend/internal/shared/config"
	"careerhub-backend/internal/shared/server"
	"careerhub-backend/internal/shared/storage/db"
	"careerhub-backend/internal/shared/storage/object"
	localstore "careerhub-backend/internal/shared/storage/object/local"
	s3store "careerhub-backend/internal/shared/storage/object/s3"
	"careerhub-backend/internal/shared/telemetry"
)

// App holds the wired application.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore
	LLM    llm.Client

	ProfilesRepo     profiles.Repo
	LearningRepo     learning.Repo
	InteractionsRepo interactions.Repo

	AnalysisService *analyses.Service
	LearningService *learning.Service
	CareerService   *careers.Service
}

// Build prepares dependencies and wires the router. A missing database in a
// dev-like environment falls back to in-memory repositories; prod requires
// one.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	client := buildLLM(cfg)

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
		LLM:    client,
	}

	if sqlDB != nil {
		app.ProfilesRepo = profiles.NewPGRepo(sqlDB)
		app.LearningRepo = learning.NewPGRepo(sqlDB)
		app.InteractionsRepo = interactions.NewPGRepo(sqlDB)
	} else {
		app.ProfilesRepo = profiles.NewMemoryRepo()
		app.LearningRepo = learning.NewMemoryRepo()
		app.InteractionsRepo = interactions.NewMemoryRepo()
	}

	app.AnalysisService = analyses.NewService(client)
	app.LearningService = &learning.Service{
		LLM:          client,
		ModelName:    cfg.GeminiModel,
		Profiles:     app.ProfilesRepo,
		Resources:    app.LearningRepo,
		Interactions: app.InteractionsRepo,
	}
	app.CareerService = &careers.Service{
		Profiles:     app.ProfilesRepo,
		Interactions: app.InteractionsRepo,
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          cfg,
		AnalysisHandler: analyses.NewHandler(app.AnalysisService),
		ExtractHandler:  extract.NewHandler(extract.NewExtractor(), store),
		ProfileHandler:  profiles.NewHandler(app.ProfilesRepo),
		LearningHandler: learning.NewHandler(app.LearningService),
		CareerHandler:   careers.NewHandler(app.CareerService),
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.db_missing", map[string]any{
				"detail": "DATABASE_URL empty, using in-memory repositories",
			})
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.db_unavailable", map[string]any{
				"error":  err.Error(),
				"detail": "falling back to in-memory repositories",
			})
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildLLM(cfg config.Config) llm.Client {
	client, err := gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		telemetry.Warn("bootstrap.llm_unconfigured", map[string]any{
			"error":  err.Error(),
			"detail": "analysis and suggestions will serve static fallbacks",
		})
		return llm.PlaceholderClient{}
	}
	return client
}

func isDevLike(env string) bool {
	switch env {
	case "dev", "test", "local":
		return true
	}
	return false
}
