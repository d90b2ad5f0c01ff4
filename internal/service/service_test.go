package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Eric-317/StudySync/internal/config"
	"github.com/Eric-317/StudySync/internal/model"
	"github.com/Eric-317/StudySync/internal/repository"
)

type fixture struct {
	db      *gorm.DB
	users   *repository.UserRepository
	tasks   *repository.TaskRepository
	events  *repository.EventRepository
	cats    *repository.CategoryRepository
	user    *model.User
	userSvc *UserService
	taskSvc *TaskService
	catSvc  *CategoryService
	calSvc  *CalendarService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	cfg := config.Default().Database
	cfg.SQLite.Path = filepath.Join(t.TempDir(), "studysync.db")

	db, err := repository.Open(cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	f := &fixture{
		db:     db,
		users:  repository.NewUserRepository(db),
		tasks:  repository.NewTaskRepository(db, zerolog.Nop(), repository.DueTimeSubstituteNow),
		events: repository.NewEventRepository(db),
		cats:   repository.NewCategoryRepository(db),
	}
	f.userSvc = NewUserService(f.users)
	f.taskSvc = NewTaskService(f.tasks, f.cats)
	f.catSvc = NewCategoryService(f.cats)
	f.calSvc = NewCalendarService(f.events, f.tasks)

	user, err := f.userSvc.Register(context.Background(), "student@test", "secret", "2001-09-09")
	require.NoError(t, err)
	f.user = user
	return f
}
