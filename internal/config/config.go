// Package config loads application settings from the environment.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"warehouse/pkg/ordernumber"
)

type Config struct {
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	OrderNumber OrderNumberConfig
	Jobs        JobsConfig
}

type ServerConfig struct {
	Port               string
	GinMode            string
	CORSAllowedOrigins []string
	ShutdownTimeout    time.Duration
}

type DatabaseConfig struct {
	Driver           string // postgres | sqlite
	Host             string
	Port             int
	User             string
	Password         string
	Name             string
	SSLMode          string
	SQLitePath       string
	MaxOpenConns     int
	MaxIdleConns     int
	ConnMaxIdleTime  time.Duration
	ConnMaxLifetime  time.Duration
	StatementTimeout time.Duration
	AutoMigrate      bool
	LogLevel         string
}

// URL returns the PostgreSQL connection string in URL format
func (d DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

type RedisConfig struct {
	Addr     string // empty selects the in-process cache
	Password string
	DB       int
	TTL      time.Duration
}

type OrderNumberConfig struct {
	Prefix           string
	DateFormat       string
	SequenceLength   int
	Separator        string
	UseWarehouseCode bool
}

// Options converts the config into generator options for the given warehouse
func (o OrderNumberConfig) Options(warehouseCode string) ordernumber.Options {
	return ordernumber.Options{
		DateFormat:       o.DateFormat,
		SequenceLength:   o.SequenceLength,
		Separator:        o.Separator,
		UseWarehouseCode: o.UseWarehouseCode,
		WarehouseCode:    warehouseCode,
	}
}

type JobsConfig struct {
	StatsRefreshSchedule string
}

// Load reads .env (if present) and then the process environment
func Load() *Config {
	for _, path := range []string{".env", "configs/.env"} {
		if err := godotenv.Load(path); err == nil {
			log.Printf("Loaded environment from %s", path)
			break
		}
	}

	return &Config{
		Server: ServerConfig{
			Port:               getEnv("PORT", "8080"),
			GinMode:            getEnv("GIN_MODE", "debug"),
			CORSAllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3001"}),
			ShutdownTimeout:    getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Database: DatabaseConfig{
			Driver:           strings.ToLower(getEnv("DB_DRIVER", "postgres")),
			Host:             getEnv("DB_HOST", "localhost"),
			Port:             getEnvAsInt("DB_PORT", 5432),
			User:             getEnv("DB_USER", "postgres"),
			Password:         getEnv("DB_PASSWORD", "postgres"),
			Name:             getEnv("DB_NAME", "warehouse_management"),
			SSLMode:          getEnv("DB_SSLMODE", "disable"),
			SQLitePath:       getEnv("DB_SQLITE_PATH", "warehouse.db"),
			MaxOpenConns:     getEnvAsInt("DB_MAX_OPEN_CONNS", 20),
			MaxIdleConns:     getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxIdleTime:  getEnvAsDuration("DB_CONN_MAX_IDLE_TIME", 30*time.Second),
			ConnMaxLifetime:  getEnvAsDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 30*time.Second),
			AutoMigrate:      getEnvAsBool("DB_AUTO_MIGRATE", true),
			LogLevel:         getEnv("GORM_LOG_LEVEL", "warn"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			TTL:      getEnvAsDuration("CACHE_TTL", 5*time.Minute),
		},
		OrderNumber: OrderNumberConfig{
			Prefix:           getEnv("ORDER_NUMBER_PREFIX", "PNK"),
			DateFormat:       getEnv("ORDER_NUMBER_DATE_FORMAT", ordernumber.DefaultDateFormat),
			SequenceLength:   getEnvAsInt("ORDER_NUMBER_SEQUENCE_LENGTH", ordernumber.DefaultSequenceLength),
			Separator:        getEnv("ORDER_NUMBER_SEPARATOR", ordernumber.DefaultSeparator),
			UseWarehouseCode: getEnvAsBool("ORDER_NUMBER_USE_WAREHOUSE_CODE", false),
		},
		Jobs: JobsConfig{
			StatsRefreshSchedule: getEnv("STATS_REFRESH_SCHEDULE", "@every 5m"),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("config: invalid integer for %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func getEnvAsBool(key string, fallback bool) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "1", "true", "yes":
		return true
	case "0", "false", "no":
		return false
	default:
		return fallback
	}
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("config: invalid duration for %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return d
}

func getEnvAsList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
