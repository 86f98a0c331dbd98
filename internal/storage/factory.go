package storage

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/rotorbench/rotorbench/internal/config"
	"github.com/rotorbench/rotorbench/internal/database"
	"github.com/rotorbench/rotorbench/internal/storage/db"
	"github.com/rotorbench/rotorbench/internal/storage/memory"
)

// NewBackend creates a storage backend based on configuration.
func NewBackend(storageType string, log zerolog.Logger) (Backend, error) {
	switch storageType {
	case "db":
		return db.New(database.NewManager(log)), nil
	case "memory":
		return memory.New(config.Memory()), nil
	default:
		return nil, fmt.Errorf("unknown storage type: %s", storageType)
	}
}
