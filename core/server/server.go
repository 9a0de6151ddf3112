package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"roomboard/core/cache"
	"roomboard/core/clock"
	"roomboard/core/config"
	"roomboard/core/database"
	"roomboard/core/logger"
	"roomboard/core/middleware"
	"roomboard/core/notifier"
	"roomboard/core/tasks"
	"roomboard/modules/admin"
	"roomboard/modules/chat"
	"roomboard/modules/history"
	"roomboard/modules/room"
	"roomboard/modules/stats"
	"roomboard/modules/team"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Run boots the whole service: config, storage, cache, HTTP modules, and
// the background sweep. Blocks until SIGINT/SIGTERM.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := database.InitDB(database.DatabaseConfig{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
	})
	if err != nil {
		return err
	}

	cacheClient, err := cache.InitCache(cfg.Redis)
	if err != nil {
		return err
	}

	notif := notifier.NewRedisNotifier(cacheClient.Client())
	clk := clock.System()
	mw := middleware.NewMiddleware()

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	team.Init(e, db)
	history.Init(e, db)
	roomSvc := room.Init(e, db, notif, clk, cfg, mw)
	stats.Init(e, db, cfg)
	chat.Init(e, db, notif, clk)
	admin.Init(e, db, cacheClient, notif, clk, cfg, mw)

	worker := tasks.StartWorker(cfg.Redis, roomSvc)
	scheduler, err := tasks.StartScheduler(cfg.Redis, cfg.SweepInterval())
	if err != nil {
		return err
	}

	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		logger.Info("Server:Run:Listening", "addr", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("Server:Run:Start", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Server:Run:ShuttingDown")

	scheduler.Shutdown()
	worker.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
