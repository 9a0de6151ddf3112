package tasks

import (
	"context"
	"fmt"
	"time"

	"roomboard/core/config"
	"roomboard/core/logger"

	"github.com/hibiken/asynq"
)

const TypeSweepExpired = "room:sweep_expired"

// Sweeper releases expired reservations. Implemented by the room module.
type Sweeper interface {
	SweepExpired(ctx context.Context) (int, error)
}

func NewSweepExpiredTask() *asynq.Task {
	return asynq.NewTask(TypeSweepExpired, nil)
}

func redisOpt(cfg config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}

// StartWorker runs the background task server. The sweep handler never
// returns an error: a failed sweep has no caller to report to and must not
// be retried out of schedule, the next tick covers it.
func StartWorker(cfg config.RedisConfig, sweeper Sweeper) *asynq.Server {
	srv := asynq.NewServer(redisOpt(cfg), asynq.Config{
		Concurrency: 2,
		Logger:      asynqLogger{},
	})

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeSweepExpired, func(ctx context.Context, t *asynq.Task) error {
		released, err := sweeper.SweepExpired(ctx)
		if err != nil {
			logger.Error("Tasks:SweepExpired", "error", err)
			return nil
		}
		if released > 0 {
			logger.Info("Tasks:SweepExpired:Released", "count", released)
		}
		return nil
	})

	go func() {
		if err := srv.Run(mux); err != nil {
			logger.Error("Tasks:Worker:Run", "error", err)
		}
	}()
	return srv
}

// StartScheduler enqueues the periodic sweep at the configured cadence.
func StartScheduler(cfg config.RedisConfig, interval time.Duration) (*asynq.Scheduler, error) {
	scheduler := asynq.NewScheduler(redisOpt(cfg), &asynq.SchedulerOpts{
		Logger: asynqLogger{},
	})

	spec := fmt.Sprintf("@every %ds", int(interval.Seconds()))
	if _, err := scheduler.Register(spec, NewSweepExpiredTask()); err != nil {
		return nil, fmt.Errorf("failed to register sweep task: %w", err)
	}

	if err := scheduler.Start(); err != nil {
		return nil, fmt.Errorf("failed to start scheduler: %w", err)
	}
	logger.Info("Tasks:Scheduler:Started", "sweep_interval", interval.String())
	return scheduler, nil
}

// asynqLogger routes asynq's own logging through the application logger.
type asynqLogger struct{}

func (asynqLogger) Debug(args ...any) { logger.Debug(fmt.Sprint(args...)) }
func (asynqLogger) Info(args ...any)  { logger.Info(fmt.Sprint(args...)) }
func (asynqLogger) Warn(args ...any)  { logger.Warn(fmt.Sprint(args...)) }
func (asynqLogger) Error(args ...any) { logger.Error(fmt.Sprint(args...)) }
func (asynqLogger) Fatal(args ...any) { logger.Error(fmt.Sprint(args...)) }
