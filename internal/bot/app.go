package bot

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"

	"github.com/whatisvlade/zefirbot/internal/catalog"
	"github.com/whatisvlade/zefirbot/internal/config"
	"github.com/whatisvlade/zefirbot/internal/database"
	"github.com/whatisvlade/zefirbot/internal/health"
	"github.com/whatisvlade/zefirbot/internal/hours"
	"github.com/whatisvlade/zefirbot/internal/leads"
	"github.com/whatisvlade/zefirbot/internal/logger"
	"github.com/whatisvlade/zefirbot/internal/menu"
	"github.com/whatisvlade/zefirbot/internal/request"
	tg "github.com/whatisvlade/zefirbot/internal/telegram"
	"github.com/whatisvlade/zefirbot/internal/telegram/router"
)

// App bundles the bot's domain components behind the Telegram transport.
type App struct {
	cfg      *config.Config
	machine  *menu.Machine
	pipeline *request.Pipeline
	notifier *telegramNotifier
	store    *leads.Store
	db       *sqlx.DB
	health   *health.Server
}

// Bootstrap initializes logging, loads the catalog, connects optional
// infrastructure, and assembles the domain components.
func Bootstrap(cfg *config.Config) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("bootstrap: nil config provided")
	}

	if err := logger.Init(logger.Settings{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		KeysOrder:   cfg.Logging.KeysOrder,
		DebugSample: cfg.Logging.DebugSample,
		Dir:         cfg.Logging.Dir,
		BotFile:     cfg.Logging.BotFile,
		Profile:     cfg.Logging.Profile,
	}); err != nil {
		return nil, fmt.Errorf("bootstrap: logger init failed: %w", err)
	}

	cat, managers, err := catalog.Load(cfg.Catalog.Path, cfg.Contacts.Default)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: catalog load failed: %w", err)
	}
	logger.Catalog.Info("catalog loaded",
		slog.String("event", "catalog.load"),
		slog.String("path", cfg.Catalog.Path),
		slog.Int("tours", cat.Len()),
	)

	wh := cfg.Request.WorkingHours
	policy, err := hours.New(wh.Start, wh.End, wh.Timezone)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: working hours: %w", err)
	}

	machine := menu.New(cat, managers, menu.Contacts{
		Default:  cfg.Contacts.Default,
		Address:  cfg.Contacts.Address,
		Schedule: cfg.Contacts.Schedule,
	}, cfg.Catalog.AviaURL)

	app := &App{
		cfg:      cfg,
		machine:  machine,
		notifier: newNotifier(),
	}

	var journal request.Journal
	if cfg.Database.Enabled() {
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("bootstrap: database initialization failed: %w", err)
		}
		if err := database.RunMigrations(cfg.Database); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("bootstrap: migrations failed: %w", err)
		}
		app.db = db
		app.store = leads.NewStore(db)
		journal = app.store
	}

	retractor := request.NewRetractor(cfg.DeleteAfter(), app.notifier)
	app.pipeline = request.New(cfg.Request.Trigger, app.notifier, retractor, policy, journal)

	if cfg.Health.Port > 0 {
		app.health = health.New(cfg.Health.Port)
	}

	return app, nil
}

// TelegramRunOptions builds the transport wiring for RunTelegram.
func (a *App) TelegramRunOptions() (tg.RunOptions, error) {
	reg := tg.NewRegistry()
	reg.RegisterCommand("/start", tg.Command{
		Handler:     a.handleStart,
		Description: "Главное меню",
	})
	reg.RegisterCommand("/leads", tg.Command{
		Handler:     a.handleLeads,
		Description: "Последние заявки",
		AdminOnly:   true,
	})

	routes := router.CommandRoutes(reg, router.CommandRouteOptions{
		AdminID: a.cfg.Telegram.AdminID,
	})
	routes = append(routes, router.CallbackRoute(a.handleAction))

	return tg.RunOptions{
		Config:      a.cfg,
		Registry:    reg,
		Middlewares: tg.DefaultMiddlewares(a.cfg, nil),
		Routes:      routes,
		OnStart: func(ctx context.Context, rt tg.Runtime) error {
			a.notifier.Bind(rt.Bot)
			if a.health != nil {
				a.health.Start()
			}
			return nil
		},
		OnStop: func(ctx context.Context, rt tg.Runtime) error {
			if a.health != nil {
				_ = a.health.Shutdown(ctx)
			}
			if a.db != nil {
				_ = a.db.Close()
			}
			return nil
		},
	}, nil
}
