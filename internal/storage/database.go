package storage

import (
	"os"
	"path/filepath"

	"github.com/fizennn/Seejam-Server/internal/game"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenAndMigrate opens the sqlite database at dataSourceName and keeps the
// schema updated via AutoMigrate.
func OpenAndMigrate(dataSourceName string) (*gorm.DB, error) {
	if dir := filepath.Dir(dataSourceName); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(
		&game.Card{},
		&game.Equipment{},
		&game.Npc{},
		&game.User{},
		&game.Deck{},
		&game.Duel{},
	); err != nil {
		return nil, err
	}
	return db, nil
}
