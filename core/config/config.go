package config

import (
	"fmt"
	"sync"
	"time"

	"roomboard/core/constants"
	"roomboard/core/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		Server   ServerConfig
		Database DatabaseConfig
		Redis    RedisConfig
		JWT      JWTConfig
		Admin    AdminConfig
		Rooms    RoomsConfig
	}

	ServerConfig struct {
		Host string
		Port int
	}

	DatabaseConfig struct {
		Host     string
		Port     int
		User     string
		Password string
		DBName   string
	}

	RedisConfig struct {
		Addr     string
		Password string
		DB       int
	}

	JWTConfig struct {
		Secret        string
		ExpiryMinutes int
	}

	// AdminConfig seeds the first administrator account when the admins
	// table is empty.
	AdminConfig struct {
		Username string
		Password string
	}

	RoomsConfig struct {
		ReservationWindowSeconds int
		SweepIntervalSeconds     int
		MinVisitMinutes          int
	}
)

var (
	mu       sync.RWMutex
	instance *Config
)

// Load reads .env (if present) and the environment into the process-wide
// config instance.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Info("Config:Load:NoDotEnv")
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 7070)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "roomboard")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_EXPIRY_MINUTES", 720)
	v.SetDefault("ADMIN_USERNAME", "admin")
	v.SetDefault("ADMIN_PASSWORD", "")
	v.SetDefault("RESERVATION_WINDOW_SECONDS", constants.DefaultReservationWindowSeconds)
	v.SetDefault("SWEEP_INTERVAL_SECONDS", constants.DefaultSweepIntervalSeconds)
	v.SetDefault("MIN_VISIT_MINUTES", constants.DefaultMinVisitMinutes)

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("SERVER_HOST"),
			Port: v.GetInt("SERVER_PORT"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetInt("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			DBName:   v.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        v.GetString("JWT_SECRET"),
			ExpiryMinutes: v.GetInt("JWT_EXPIRY_MINUTES"),
		},
		Admin: AdminConfig{
			Username: v.GetString("ADMIN_USERNAME"),
			Password: v.GetString("ADMIN_PASSWORD"),
		},
		Rooms: RoomsConfig{
			ReservationWindowSeconds: v.GetInt("RESERVATION_WINDOW_SECONDS"),
			SweepIntervalSeconds:     v.GetInt("SWEEP_INTERVAL_SECONDS"),
			MinVisitMinutes:          v.GetInt("MIN_VISIT_MINUTES"),
		},
	}

	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET must be set")
	}
	if cfg.Rooms.ReservationWindowSeconds <= 0 {
		return nil, fmt.Errorf("RESERVATION_WINDOW_SECONDS must be positive")
	}
	if cfg.Rooms.SweepIntervalSeconds <= 0 {
		return nil, fmt.Errorf("SWEEP_INTERVAL_SECONDS must be positive")
	}

	mu.Lock()
	instance = cfg
	mu.Unlock()

	logger.Info("Config:Load:Success",
		"server_port", cfg.Server.Port,
		"db_host", cfg.Database.Host,
		"redis_addr", cfg.Redis.Addr,
		"reservation_window_seconds", cfg.Rooms.ReservationWindowSeconds,
		"sweep_interval_seconds", cfg.Rooms.SweepIntervalSeconds,
	)
	return cfg, nil
}

// Get returns the loaded config. Panics when Load has not run; use GetSafe
// in paths that may execute before boot finishes.
func Get() *Config {
	cfg, ok := GetSafe()
	if !ok {
		panic("config: Get called before Load")
	}
	return cfg
}

func GetSafe() (*Config, bool) {
	mu.RLock()
	defer mu.RUnlock()
	return instance, instance != nil
}

// ReservationWindow is the duration a reservation holds a room before the
// sweeper reclaims it.
func (c *Config) ReservationWindow() time.Duration {
	return time.Duration(c.Rooms.ReservationWindowSeconds) * time.Second
}

func (c *Config) SweepInterval() time.Duration {
	return time.Duration(c.Rooms.SweepIntervalSeconds) * time.Second
}
