package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/Eric-317/StudySync/internal/config"
	"github.com/Eric-317/StudySync/internal/model"
	"github.com/Eric-317/StudySync/internal/repository"
	"github.com/Eric-317/StudySync/internal/service"
)

// logNotifier writes digests to the process log. The desktop client is
// the real consumer of the core; this keeps the reminder path exercised
// without one.
type logNotifier struct {
	log zerolog.Logger
}

func (n logNotifier) Notify(_ context.Context, user model.User, message string) error {
	n.log.Info().Str("user", user.Email).Msg(message)
	return nil
}

func main() {
	configPath := flag.String("config", "studysync.yaml", "path to the configuration file")
	flag.Parse()

	// A missing .env is fine; the environment may be set by the shell.
	_ = godotenv.Load()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}

	db, err := repository.Open(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.Database.Backend).Msg("open database")
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db, log, repository.DueTimeSubstituteNow)
	eventRepo := repository.NewEventRepository(db)

	calendarSvc := service.NewCalendarService(eventRepo, taskRepo)
	reminderSvc := service.NewReminderService(userRepo, taskRepo, calendarSvc, logNotifier{log: log})

	scheduler := service.NewSchedulerService(time.Local)
	if cfg.Reminder.Enabled {
		if _, err := scheduler.ScheduleDaily(cfg.Reminder.DailyTime, func() {
			jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := reminderSvc.SendDailyDigests(jobCtx, time.Now()); err != nil {
				log.Error().Err(err).Msg("daily digests")
			}
		}); err != nil {
			log.Fatal().Err(err).Msg("schedule digests")
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	log.Info().Str("backend", cfg.Database.Backend).Msg("studysync store ready")
	<-ctx.Done()
	log.Info().Msg("shutdown complete")
}
