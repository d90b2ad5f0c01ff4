package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Backend kinds accepted in DatabaseConfig.Backend.
const (
	BackendSQLite = "sqlite"
	BackendMySQL  = "mysql"
)

// DatabaseConfig selects and describes the storage backend. There is no
// process-wide switch; the struct is handed to repository.Open.
type DatabaseConfig struct {
	Backend string `yaml:"backend"`

	SQLite struct {
		Path string `yaml:"path"`
	} `yaml:"sqlite"`

	MySQL struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"-"` // env only, never written to disk
		DBName   string `yaml:"dbname"`
		Params   string `yaml:"params"`
	} `yaml:"mysql"`
}

// ReminderConfig controls the daily digest job.
type ReminderConfig struct {
	Enabled   bool   `yaml:"enabled"`
	DailyTime string `yaml:"daily_time"` // HH:MM
}

// Config keeps runtime settings for the daemon.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Reminder ReminderConfig `yaml:"reminder"`
}

// Default returns the configuration used when no file and no environment
// overrides are present: the embedded backend with its fixed file name.
func Default() Config {
	var cfg Config
	cfg.Database.Backend = BackendSQLite
	cfg.Database.SQLite.Path = "studysync.db"
	cfg.Database.MySQL.Port = 3306
	// clientFoundRows makes UPDATE report matched rows instead of changed
	// rows; the repository found/not-found contracts depend on that count.
	cfg.Database.MySQL.Params = "charset=utf8mb4&parseTime=True&loc=Local&clientFoundRows=true"
	cfg.Reminder.Enabled = true
	cfg.Reminder.DailyTime = "08:00"
	return cfg
}

// Load reads the yaml file at path (missing file is fine), applies
// STUDYSYNC_* environment overrides, and validates the result. The MySQL
// password is only ever taken from STUDYSYNC_MYSQL_PASSWORD.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		case os.IsNotExist(err):
			// First run keeps the defaults.
		default:
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.Database.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes the configuration back to path. The MySQL password field is
// excluded from marshalling, so stored preferences never contain it.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv("STUDYSYNC_DB_BACKEND")); v != "" {
		cfg.Database.Backend = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv("STUDYSYNC_SQLITE_PATH")); v != "" {
		cfg.Database.SQLite.Path = v
	}
	if v := strings.TrimSpace(os.Getenv("STUDYSYNC_MYSQL_HOST")); v != "" {
		cfg.Database.MySQL.Host = v
	}
	if v := strings.TrimSpace(os.Getenv("STUDYSYNC_MYSQL_PORT")); v != "" {
		if port, err := strconv.Atoi(v); err == nil && port > 0 {
			cfg.Database.MySQL.Port = port
		}
	}
	if v := strings.TrimSpace(os.Getenv("STUDYSYNC_MYSQL_USER")); v != "" {
		cfg.Database.MySQL.User = v
	}
	if v := os.Getenv("STUDYSYNC_MYSQL_PASSWORD"); v != "" {
		cfg.Database.MySQL.Password = v
	}
	if v := strings.TrimSpace(os.Getenv("STUDYSYNC_MYSQL_DBNAME")); v != "" {
		cfg.Database.MySQL.DBName = v
	}
	if v := strings.TrimSpace(os.Getenv("STUDYSYNC_REMINDER_TIME")); v != "" {
		cfg.Reminder.DailyTime = v
	}
}

// Validate checks that the selected backend is usable. Choosing mysql
// without connection details is the classic misconfiguration the desktop
// app surfaced as a connection error; it is caught here before dialing.
func (d DatabaseConfig) Validate() error {
	switch d.Backend {
	case BackendSQLite:
		if d.SQLite.Path == "" {
			return fmt.Errorf("sqlite backend selected but no path configured")
		}
	case BackendMySQL:
		if d.MySQL.Host == "" || d.MySQL.User == "" || d.MySQL.DBName == "" {
			return fmt.Errorf("mysql backend selected but host, user or dbname missing")
		}
	default:
		return fmt.Errorf("unknown database backend %q", d.Backend)
	}
	return nil
}

// DSN builds the driver connection string for the active backend.
func (d DatabaseConfig) DSN() string {
	switch d.Backend {
	case BackendMySQL:
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
			d.MySQL.User, d.MySQL.Password, d.MySQL.Host, d.MySQL.Port, d.MySQL.DBName, d.MySQL.Params)
	default:
		// SQLite does not persist foreign key enforcement, so every pooled
		// connection enables it through the DSN.
		return fmt.Sprintf("file:%s?_fk=1", d.SQLite.Path)
	}
}
