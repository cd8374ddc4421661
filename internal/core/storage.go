package core

import (
	"context"
	"fmt"
	"os"

	"rostercore/internal/infra/persistence/memory"
	"rostercore/internal/infra/persistence/postgres"
	"rostercore/internal/infra/persistence/sqlite"
	"rostercore/pkg/domain"
)

// StorageDriver identifies a concrete persistent storage implementation.
type StorageDriver string

const (
	StorageMemory   StorageDriver = "memory"   // process-local tables (default)
	StorageSQLite   StorageDriver = "sqlite"   // modernc sqlite, in-memory unless a file DSN is set
	StoragePostgres StorageDriver = "postgres" // PostgreSQL server
)

// Environment variables read by StorageConfigFromEnv.
const (
	EnvStorageDriver = "ROSTERCORE_STORAGE_DRIVER"
	EnvSQLiteDSN     = "ROSTERCORE_SQLITE_DSN"
	EnvPostgresDSN   = "ROSTERCORE_POSTGRES_DSN"
)

// StorageConfig selects and parameterises a storage backend.
type StorageConfig struct {
	Driver      StorageDriver
	SQLiteDSN   string
	PostgresDSN string
}

// StorageConfigFromEnv reads the storage settings from the environment.
//
//	ROSTERCORE_STORAGE_DRIVER: memory|sqlite|postgres (default memory)
//	ROSTERCORE_SQLITE_DSN: sqlite DSN (default private in-memory database)
//	ROSTERCORE_POSTGRES_DSN: postgres DSN, required when driver=postgres
func StorageConfigFromEnv() StorageConfig {
	cfg := StorageConfig{
		Driver:      StorageDriver(os.Getenv(EnvStorageDriver)),
		SQLiteDSN:   os.Getenv(EnvSQLiteDSN),
		PostgresDSN: os.Getenv(EnvPostgresDSN),
	}
	if cfg.Driver == "" {
		cfg.Driver = StorageMemory
	}
	return cfg
}

// OpenStore opens the backend named by cfg.
func OpenStore(ctx context.Context, cfg StorageConfig) (domain.PersistentStore, error) {
	switch cfg.Driver {
	case StorageMemory, "":
		return memory.NewStore(), nil
	case StorageSQLite:
		return sqlite.NewStore(ctx, cfg.SQLiteDSN)
	case StoragePostgres:
		return postgres.NewStore(ctx, cfg.PostgresDSN)
	default:
		return nil, fmt.Errorf("unknown storage driver %s", cfg.Driver)
	}
}

// OpenPersistentStore selects a backend using environment variables.
func OpenPersistentStore(ctx context.Context) (domain.PersistentStore, error) {
	return OpenStore(ctx, StorageConfigFromEnv())
}
