package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/osse101/SkinBot_Go/docs"
	"github.com/osse101/SkinBot_Go/internal/access"
	"github.com/osse101/SkinBot_Go/internal/bootstrap"
	"github.com/osse101/SkinBot_Go/internal/command"
	"github.com/osse101/SkinBot_Go/internal/config"
	"github.com/osse101/SkinBot_Go/internal/confirm"
	"github.com/osse101/SkinBot_Go/internal/contents"
	"github.com/osse101/SkinBot_Go/internal/discord"
	"github.com/osse101/SkinBot_Go/internal/handler"
	"github.com/osse101/SkinBot_Go/internal/info"
	"github.com/osse101/SkinBot_Go/internal/inventory"
	"github.com/osse101/SkinBot_Go/internal/market"
	"github.com/osse101/SkinBot_Go/internal/naming"
	"github.com/osse101/SkinBot_Go/internal/scheduler"
	"github.com/osse101/SkinBot_Go/internal/server"
	"github.com/osse101/SkinBot_Go/internal/skin"
	"github.com/osse101/SkinBot_Go/internal/telegram"
	"github.com/osse101/SkinBot_Go/internal/valuation"
	"github.com/osse101/SkinBot_Go/internal/worker"
)

const (
	shutdownTimeout = 15 * time.Second
	jobTimeout      = time.Minute
)

// @title SkinBot API
// @version 1.0
// @description Skin catalog lookup, per-user inventories and market valuation.
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	if err := run(); err != nil {
		slog.Error("SkinBot exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	for _, w := range warnings {
		slog.Warn("Environment warning", "detail", w)
	}
	docs.SwaggerInfo.Version = cfg.Version

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cat, err := bootstrap.LoadCatalog(cfg)
	if err != nil {
		return err
	}

	repos, err := bootstrap.InitializeRepositories(ctx, cfg)
	if err != nil {
		return err
	}

	var fetcher market.Fetcher
	if cfg.MarketURL != "" {
		fetcher = market.NewClient(cfg.MarketURL, cfg.MarketTimeout)
	} else {
		slog.Warn("MARKET_URL not set, market prices disabled")
	}
	quotes := market.NewCache(fetcher, cfg.MarketRefreshInterval)
	if err := quotes.ForceRefresh(ctx); err != nil {
		// Non-fatal: lookups still work, prices show as unavailable
		slog.Warn("Initial market refresh failed", "error", err)
	}

	resolver, err := naming.NewResolver(cat, cfg.ResolverCacheSize)
	if err != nil {
		repos.Close()
		return err
	}
	skins := skin.NewService(resolver, contents.NewExpander(cat), quotes, cfg.ImageBaseURL)
	inv := inventory.NewService(repos.Inventory, inventory.Limits{
		Add:    cfg.AddQuantityLimit,
		Remove: cfg.RemoveQuantityLimit,
	})
	engine := valuation.NewEngine(resolver, quotes)
	acl := access.NewService(repos.Blocklist, cfg.AdminUserIDs)

	infoLoader := info.NewLoader(cfg.InfoDir)
	if err := infoLoader.Load(); err != nil {
		repos.Close()
		return err
	}

	router := command.NewRouter(command.Dependencies{
		Skins:         skins,
		Inventory:     inv,
		Valuation:     engine,
		Confirmations: confirm.NewManager(cfg.ConfirmationTTL, cfg.ConfirmationCapacity),
		Access:        acl,
		Info:          infoLoader,
	})

	srv := server.NewServer(server.Config{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
	}, server.Deps{
		Skins:     skins,
		Inventory: inv,
		Valuation: engine,
		Access:    acl,
		Market:    quotes,
		Info:      infoLoader,
		Checks: map[string]handler.HealthChecker{
			bootstrap.CheckStorage: repos.Health,
		},
	})

	var tg *telegram.Bot
	if cfg.TelegramToken != "" {
		if tg, err = telegram.NewBot(cfg.TelegramToken, cfg.TelegramEndpoint, router); err != nil {
			repos.Close()
			return err
		}
	}

	var dg *discord.Bot
	if cfg.DiscordToken != "" {
		dg, err = discord.New(discord.Config{
			Token:       cfg.DiscordToken,
			AppID:       cfg.DiscordAppID,
			ForceUpdate: cfg.DiscordForce,
		}, router)
		if err != nil {
			repos.Close()
			return err
		}
	}

	pool := worker.NewPool(cfg.Workers, cfg.WorkerQueue, jobTimeout)
	pool.Start()
	sched := scheduler.New(pool)
	if err := sched.Schedule(cfg.MarketRefreshSchedule, market.NewRefreshJob(quotes)); err != nil {
		pool.Stop()
		repos.Close()
		return err
	}
	sched.Start()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Start)

	var bots sync.WaitGroup
	if tg != nil {
		bots.Add(1)
		g.Go(func() error {
			defer bots.Done()
			return tg.Start(gctx)
		})
	}
	if dg != nil {
		bots.Add(1)
		g.Go(func() error {
			defer bots.Done()
			return dg.Run(gctx)
		})
	}
	botsDone := make(chan struct{})
	go func() {
		bots.Wait()
		close(botsDone)
	}()

	// Shutdown runs once a signal arrives or any component fails
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
			Server:       srv,
			Scheduler:    sched,
			Pool:         pool,
			Telegram:     tg,
			Repositories: repos,
			BotsDone:     botsDone,
		})
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
