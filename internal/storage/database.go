package storage

import (
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kiran797979/monad-blitz-hyderabad/internal/arena"
)

// OpenAndMigrate opens (creating the parent directory if needed) the SQLite
// database at path and brings the schema up to date.
func OpenAndMigrate(path string) (*gorm.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&arena.Agent{}, &arena.Fight{}, &arena.Market{}, &arena.Bet{}); err != nil {
		return nil, err
	}

	// WAL keeps concurrent reads cheap while resolution and betting write.
	if execErr := db.Exec("PRAGMA journal_mode = WAL;").Error; execErr != nil {
		return nil, execErr
	}
	return db, nil
}
