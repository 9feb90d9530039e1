package bootstrap

import (
	"context"
	"database/sql"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"hunterai-backend/internal/applications"
	"hunterai-backend/internal/ats"
	"hunterai-backend/internal/fetch"
	"hunterai-backend/internal/jobs"
	"hunterai-backend/internal/resumes"
	"hunterai-backend/internal/shared/config"
	"hunterai-backend/internal/shared/server"
	"hunterai-backend/internal/shared/storage/db"
	"hunterai-backend/internal/shared/storage/object"
	localstore "hunterai-backend/internal/shared/storage/object/local"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore

	ResumeRepo      resumes.Repo
	JobRepo         jobs.Repo
	ApplicationRepo applications.Repo

	ResumeService      *resumes.Service
	JobService         *jobs.Service
	ATSService         *ats.Service
	ApplicationService *applications.Service

	ResumeHandler      *resumes.Handler
	JobHandler         *jobs.Handler
	ATSHandler         *ats.Handler
	ApplicationHandler *applications.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  localstore.New(cfg.LocalStoreDir),
	}

	if app.DB != nil {
		app.ResumeRepo = &resumes.PGRepo{DB: app.DB}
		app.JobRepo = &jobs.PGRepo{DB: app.DB}
		app.ApplicationRepo = &applications.PGRepo{DB: app.DB}
	} else {
		app.ResumeRepo = resumes.NewMemoryRepo()
		app.JobRepo = jobs.NewMemoryRepo()
		app.ApplicationRepo = applications.NewMemoryRepo()
	}

	app.ResumeService = &resumes.Service{Store: app.Store, Repo: app.ResumeRepo}
	app.JobService = &jobs.Service{
		Fetcher: fetch.NewClient(cfg.ScrapeTimeout),
		Repo:    app.JobRepo,
	}
	app.ATSService = &ats.Service{Resumes: app.ResumeService, Jobs: app.JobService}
	app.ApplicationService = &applications.Service{
		Repo:    app.ApplicationRepo,
		Resumes: app.ResumeService,
		Jobs:    app.JobService,
	}

	app.ResumeHandler = resumes.NewHandler(app.ResumeService)
	app.JobHandler = jobs.NewHandler(app.JobService)
	app.ATSHandler = ats.NewHandler(app.ATSService)
	app.ApplicationHandler = applications.NewHandler(app.ApplicationService)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:             app.Config,
		ResumeHandler:      app.ResumeHandler,
		JobHandler:         app.JobHandler,
		ATSHandler:         app.ATSHandler,
		ApplicationHandler: app.ApplicationHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, errDatabaseRequired
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
