// Package config loads server configuration from the environment.
package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Storage backends selectable via STORAGE_TYPE
const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
	StorageDisk   = "disk"
	StorageMongo  = "mongo"
	StorageSQL    = "sql"
)

type Config struct {
	Host      string `env:"HOST,       default=localhost"`
	Port      int    `env:"PORT,       default=8080"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`
	LogPretty bool   `env:"LOG_PRETTY, default=false"`
	StaticDir string `env:"STATIC_DIR"`

	// JWTSecret switches token fabrication to signed JWTs when set
	JWTSecret  string `env:"JWT_SECRET"`
	DateLayout string `env:"DATE_LAYOUT, default=2.1.2006"`

	StorageType string `env:"STORAGE_TYPE, default=memory"`

	Redis RedisConfig
	Disk  DiskConfig
	Mongo MongoConfig
	SQL   SQLConfig
}

type RedisConfig struct {
	URL    string `env:"REDIS_URL,    default=redis://localhost:6379"`
	Prefix string `env:"REDIS_PREFIX, default=easylog"`
}

type DiskConfig struct {
	Path string `env:"DISK_PATH, default=data/easylog"`
}

type MongoConfig struct {
	URI        string        `env:"MONGO_URI,        default=mongodb://localhost:27017"`
	Database   string        `env:"MONGO_DB,         default=easylog"`
	Collection string        `env:"MONGO_COLLECTION, default=kv"`
	Timeout    time.Duration `env:"MONGO_TIMEOUT,    default=10s"`
}

type SQLConfig struct {
	Driver string `env:"SQL_DRIVER, default=sqlite"`
	DSN    string `env:"SQL_DSN,    default=easylog.db"`
}

// Load reads a .env file when present and then the process environment
func Load(ctx context.Context) (*Config, error) {
	_ = godotenv.Load()
	return process(ctx, envconfig.OsLookuper())
}

// LoadFrom reads configuration from a fixed map, ignoring the environment
func LoadFrom(ctx context.Context, env map[string]string) (*Config, error) {
	return process(ctx, envconfig.MapLookuper(env))
}

func process(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the values envconfig cannot
func (c *Config) Validate() error {
	c.StorageType = strings.ToLower(strings.TrimSpace(c.StorageType))
	switch c.StorageType {
	case StorageMemory, StorageRedis, StorageDisk, StorageMongo, StorageSQL:
	default:
		return fmt.Errorf("config: unknown STORAGE_TYPE %q", c.StorageType)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config: invalid PORT %d", c.Port)
	}
	if strings.TrimSpace(c.DateLayout) == "" {
		return fmt.Errorf("config: DATE_LAYOUT must not be empty")
	}
	return nil
}

// Addr is the listen address
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
