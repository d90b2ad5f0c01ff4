package repository

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/Eric-317/StudySync/internal/config"
	"github.com/Eric-317/StudySync/internal/model"
)

// DefaultCategories are seeded on first run so a fresh install has a
// usable label set.
var DefaultCategories = []string{"Studying", "Homework", "Writing", "Meeting", "Reading"}

// Open connects to the configured backend, migrates the schema and seeds
// the default categories. The returned handle owns a connection pool and
// is shared by every repository; callers close it through db.DB().
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var dialector gorm.Dialector
	switch cfg.Backend {
	case config.BackendMySQL:
		dialector = mysql.Open(cfg.DSN())
	default:
		// The embedded backend creates its storage file on first open.
		if err := ensureDirForSQLite(cfg.SQLite.Path); err != nil {
			return nil, err
		}
		dialector = sqlite.Open(cfg.DSN())
	}

	dbLogger := logger.New(
		log.New(os.Stdout, "", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         dbLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s db: %w", cfg.Backend, err)
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Task{},
		&model.CalendarEvent{},
	); err != nil {
		return nil, fmt.Errorf("migrate db: %w", err)
	}

	if err := seedDefaultCategories(db); err != nil {
		return nil, err
	}

	return db, nil
}

// seedDefaultCategories inserts the default labels with insert-or-ignore
// semantics, so two processes racing a first run cannot double-insert.
func seedDefaultCategories(db *gorm.DB) error {
	for _, name := range DefaultCategories {
		res := db.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&model.Category{Name: name})
		if res.Error != nil {
			return fmt.Errorf("seed category %q: %w", name, res.Error)
		}
	}
	return nil
}

// ensureDirForSQLite creates the parent dir for the SQLite file if needed.
func ensureDirForSQLite(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create db dir %q: %w", dir, err)
	}
	return nil
}
