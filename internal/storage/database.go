package storage

import (
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ericogr/novel-tactics/internal/constants"
	"github.com/ericogr/novel-tactics/internal/game"
	"github.com/ericogr/novel-tactics/internal/logging"
)

// dialectorFor picks the driver from the DSN: postgres URLs go to the pgx
// backed postgres driver, anything else is treated as a SQLite file.
func dialectorFor(dsn string) (gorm.Dialector, string) {
	lower := strings.ToLower(dsn)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return postgres.Open(dsn), "postgres"
	}
	return sqlite.Open(dsn), "sqlite"
}

func OpenAndMigrate(dataSourceName string, presets []game.PresetRecord) (*gorm.DB, error) {
	dialector, driver := dialectorFor(dataSourceName)
	db, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, err
	}
	logging.Info("database opened", logging.Fields{"driver": driver})

	// Keep schema updated via AutoMigrate; nothing is dropped on startup.
	err = db.AutoMigrate(&game.EncounterRecord{}, &game.OutcomeRecord{}, &game.PresetRecord{})
	if err != nil {
		return nil, err
	}
	if err := SeedPresets(db, presets); err != nil {
		return nil, err
	}
	return db, nil
}

// SeedPresets makes the stored presets match the configuration: new keys are
// inserted and existing keys get the configured name and request. Presets
// removed from the configuration are left in place so encounters that
// reference them keep resolving.
func SeedPresets(db *gorm.DB, presets []game.PresetRecord) error {
	for _, p := range presets {
		var existing game.PresetRecord
		err := db.Where("preset_key = ?", p.Key).First(&existing).Error
		switch {
		case err == nil:
			existing.Name = p.Name
			existing.Request = p.Request
			if err := db.Save(&existing).Error; err != nil {
				return err
			}
		case err == gorm.ErrRecordNotFound:
			rec := p
			if err := db.Create(&rec).Error; err != nil {
				return err
			}
			logging.Info("preset seeded", logging.Fields{constants.LogFieldKey: p.Key, constants.LogFieldName: p.Name})
		default:
			return err
		}
	}
	return nil
}
