package factory

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/mcoot/easylog/internal/config"
	"github.com/mcoot/easylog/internal/dependencies/clock"
	"github.com/mcoot/easylog/internal/dependencies/random"
	"github.com/mcoot/easylog/internal/services/auth"
	"github.com/mcoot/easylog/internal/services/entrylog"
	"github.com/mcoot/easylog/internal/services/journal"
	"github.com/mcoot/easylog/internal/services/registry"
	"github.com/mcoot/easylog/internal/services/route"
	"github.com/mcoot/easylog/internal/services/session"
	"github.com/mcoot/easylog/internal/storage"
	"github.com/mcoot/easylog/internal/storage/disk"
	"github.com/mcoot/easylog/internal/storage/memory"
	mongostorage "github.com/mcoot/easylog/internal/storage/mongo"
	redisstorage "github.com/mcoot/easylog/internal/storage/redis"
	sqlstorage "github.com/mcoot/easylog/internal/storage/sql"
)

// Storage type constants
const (
	StorageTypeMemory = config.StorageMemory
	StorageTypeRedis  = config.StorageRedis
	StorageTypeDisk   = config.StorageDisk
	StorageTypeMongo  = config.StorageMongo
	StorageTypeSQL    = config.StorageSQL
)

// App contains all wired application components
type App struct {
	// Storage
	Storage     storage.Storage
	StorageType string

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	AuthService    *auth.Service
	Guard          *session.Guard
	Entries        *entrylog.Store
	Registry       *registry.Registry
	Resolver       *route.Resolver
	JournalService *journal.Service

	closer io.Closer
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *zerolog.Logger
	// StorageType selects the storage backend
	// If empty, defaults to "memory"
	StorageType string
	// Backend settings; the one matching StorageType is required
	RedisConfig *redisstorage.Config
	DiskConfig  *disk.Config
	MongoConfig *mongostorage.Config
	SQLConfig   *sqlstorage.Config
	// JWTSecret switches token fabrication to signed JWTs (optional)
	JWTSecret string
	// EntryLogConfig controls entry dates
	// If zero value, defaults to entrylog.DefaultConfig()
	EntryLogConfig entrylog.Config
}

// New creates a new application with all dependencies wired
func New(ctx context.Context, cfg Config) (*App, error) {
	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	store, closer, err := newStorage(ctx, storageType, cfg)
	if err != nil {
		return nil, err
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	var issuer auth.TokenIssuer = auth.NewMockIssuer(clk)
	if cfg.JWTSecret != "" {
		issuer = auth.NewJWTIssuer(cfg.JWTSecret, clk, rnd)
	}

	entryCfg := cfg.EntryLogConfig
	if entryCfg.DateLayout == "" {
		entryCfg = entrylog.DefaultConfig()
	}

	app := newWithDependencies(store, clk, rnd, issuer, entryCfg, logger)
	app.StorageType = storageType
	app.closer = closer

	logger.Info().Str("storage", storageType).Bool("jwt", cfg.JWTSecret != "").Msg("application wired")
	return app, nil
}

// FromConfig builds the factory config from environment configuration
func FromConfig(ctx context.Context, c *config.Config, logger zerolog.Logger) (*App, error) {
	redisCfg := redisstorage.DefaultConfig()
	redisCfg.URL = c.Redis.URL
	redisCfg.KeyPrefix = c.Redis.Prefix

	diskCfg := disk.DefaultConfig()
	diskCfg.BasePath = c.Disk.Path

	mongoCfg := mongostorage.Config{
		URI:        c.Mongo.URI,
		Database:   c.Mongo.Database,
		Collection: c.Mongo.Collection,
		Timeout:    c.Mongo.Timeout,
	}

	sqlCfg := sqlstorage.Config{Driver: c.SQL.Driver, DSN: c.SQL.DSN}

	return New(ctx, Config{
		Logger:         &logger,
		StorageType:    c.StorageType,
		RedisConfig:    &redisCfg,
		DiskConfig:     &diskCfg,
		MongoConfig:    &mongoCfg,
		SQLConfig:      &sqlCfg,
		JWTSecret:      c.JWTSecret,
		EntryLogConfig: entrylog.Config{DateLayout: c.DateLayout},
	})
}

func newStorage(ctx context.Context, storageType string, cfg Config) (storage.Storage, io.Closer, error) {
	switch storageType {
	case StorageTypeMemory:
		return memory.New(), nil, nil
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, nil, errors.New("RedisConfig required when StorageType is redis")
		}
		s, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	case StorageTypeDisk:
		diskCfg := disk.DefaultConfig()
		if cfg.DiskConfig != nil {
			diskCfg = *cfg.DiskConfig
		}
		return disk.New(diskCfg), nil, nil
	case StorageTypeMongo:
		if cfg.MongoConfig == nil {
			return nil, nil, errors.New("MongoConfig required when StorageType is mongo")
		}
		s, err := mongostorage.New(ctx, *cfg.MongoConfig)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	case StorageTypeSQL:
		sqlCfg := sqlstorage.DefaultConfig()
		if cfg.SQLConfig != nil {
			sqlCfg = *cfg.SQLConfig
		}
		s, err := sqlstorage.New(sqlCfg)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	default:
		return nil, nil, fmt.Errorf("invalid StorageType %q: must be one of memory, redis, disk, mongo, sql", storageType)
	}
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	issuer auth.TokenIssuer,
	entryCfg entrylog.Config,
	logger zerolog.Logger,
) *App {
	authService := auth.New(issuer, logger)
	guard := session.New(store, authService, logger)
	entries := entrylog.New(store, clk, entryCfg, logger)
	reg := registry.New(store, entries, logger)
	resolver := route.NewResolver(reg, logger)
	journalService := journal.New(guard, reg, entries, resolver, logger)

	return &App{
		Storage:        store,
		StorageType:    StorageTypeMemory,
		Clock:          clk,
		Random:         rnd,
		AuthService:    authService,
		Guard:          guard,
		Entries:        entries,
		Registry:       reg,
		Resolver:       resolver,
		JournalService: journalService,
	}
}

// Close releases the storage backend, if it holds connections
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}
