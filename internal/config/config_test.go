package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, BackendSQLite, cfg.Database.Backend)
	assert.Equal(t, "studysync.db", cfg.Database.SQLite.Path)
	assert.Equal(t, "08:00", cfg.Reminder.DailyTime)
}

func TestLoadFileAndEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "studysync.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
database:
  backend: mysql
  mysql:
    host: db.internal
    port: 3307
    user: study
    dbname: studysync
`), 0o600))

	t.Setenv("STUDYSYNC_MYSQL_PASSWORD", "hunter2")
	t.Setenv("STUDYSYNC_MYSQL_HOST", "db.override")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, BackendMySQL, cfg.Database.Backend)
	assert.Equal(t, "db.override", cfg.Database.MySQL.Host)
	assert.Equal(t, 3307, cfg.Database.MySQL.Port)
	assert.Equal(t, "hunter2", cfg.Database.MySQL.Password)

	assert.Contains(t, cfg.Database.DSN(), "study:hunter2@tcp(db.override:3307)/studysync")
	// Row counts from UPDATE must mean "matched", as they do on sqlite.
	assert.Contains(t, cfg.Database.DSN(), "clientFoundRows=true")
}

func TestLoadRejectsUnconfiguredMySQL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "studysync.yaml")
	require.NoError(t, os.WriteFile(path, []byte("database:\n  backend: mysql\n"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveNeverWritesPassword(t *testing.T) {
	cfg := Default()
	cfg.Database.Backend = BackendMySQL
	cfg.Database.MySQL.Host = "db.internal"
	cfg.Database.MySQL.User = "study"
	cfg.Database.MySQL.DBName = "studysync"
	cfg.Database.MySQL.Password = "topsecret"

	path := filepath.Join(t.TempDir(), "studysync.yaml")
	require.NoError(t, Save(path, cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "topsecret")
	assert.Contains(t, string(data), "db.internal")
}

func TestSQLiteDSNEnablesForeignKeys(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "file:studysync.db?_fk=1", cfg.Database.DSN())
}

func TestValidate(t *testing.T) {
	var d DatabaseConfig
	d.Backend = "sqlite"
	assert.Error(t, d.Validate(), "empty path")

	d.SQLite.Path = "x.db"
	assert.NoError(t, d.Validate())

	d.Backend = "postgres"
	assert.Error(t, d.Validate())
}
