//nolint:revive //it is what it is
package console

import (
	"context"
	"embed"
	"html/template"
	"log/slog"
	_ "time/tzdata"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
	"admin.townguide.app/apps/console/internal/repositories"
	"admin.townguide.app/apps/console/internal/services"
	"admin.townguide.app/apps/console/pkg/webmeta"
	"admin.townguide.app/internal/auth"
	"admin.townguide.app/internal/config"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

//go:embed templates/html/**/*html
var htmlTemplates embed.FS

type Console struct {
	logger        *slog.Logger
	ctx           context.Context
	ctxCancel     context.CancelFunc
	db            postgres.DB
	Config        config.Config
	webmetaClient webmeta.Client
	Services      *services.Services
	Repositories  *repositories.Repositories
	tpl           *template.Template
}

func New(
	authService auth.Service,
	logger *slog.Logger,
	cfg config.Config,
	db postgres.DB,
) *Console {
	return NewInner(authService, logger, cfg, db, webmeta.New(logger))
}

func NewInner(
	authService auth.Service,
	logger *slog.Logger,
	cfg config.Config,
	db postgres.DB,
	webmetaClient webmeta.Client,
) *Console {
	tpl := template.Must(template.ParseFS(htmlTemplates, "templates/html/**/*.html"))

	//nolint:exhaustruct //other fields are optional
	app := &Console{
		logger:        logger,
		Config:        cfg,
		webmetaClient: webmetaClient,
		tpl:           tpl,
	}

	app.setContext()
	app.setDB(db, authService)

	return app
}

func (app *Console) setDB(
	db postgres.DB,
	authService auth.Service,
) {
	// make sure previous app is cancelled internally
	app.ctxCancel()
	app.setContext()

	spandb := postgres.NewSpanDB(db)
	app.db = spandb

	app.Repositories = repositories.New(app.db)
	app.Services = services.New(
		app.logger,
		app.Config,
		app.Repositories,
		app.webmetaClient,
		authService,
	)
}

func (app *Console) setContext() {
	ctx, cancel := context.WithCancel(context.Background())
	app.ctx = ctx
	app.ctxCancel = cancel
}

func (app *Console) ApplyMigrations(db *pgxpool.Pool) error {
	migrationsDB := stdlib.OpenDBFromPool(db)

	goose.SetLogger(slog.NewLogLogger(app.logger.Handler(), slog.LevelInfo))

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(string(goose.DialectPostgres)); err != nil {
		return err
	}

	if err := goose.Up(migrationsDB, "migrations"); err != nil {
		return err
	}

	return nil
}

func (app *Console) GetName() string {
	return "console"
}
