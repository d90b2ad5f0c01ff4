package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Eric-317/StudySync/internal/config"
	"github.com/Eric-317/StudySync/internal/model"
)

func testConfig(t *testing.T) config.DatabaseConfig {
	t.Helper()
	cfg := config.Default().Database
	cfg.SQLite.Path = filepath.Join(t.TempDir(), "studysync.db")
	return cfg
}

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Open(testConfig(t))
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func testUser(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()
	user := &model.User{Email: email, Password: "secret", BirthDate: "2000-01-01"}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))
	return user
}

func testTaskRepo(db *gorm.DB, policy DueTimePolicy) *TaskRepository {
	return NewTaskRepository(db, zerolog.Nop(), policy)
}
