package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "DB_DSN", "STORE", "LOG_FILE"} {
		t.Setenv(k, "") // register restore
		os.Unsetenv(k)
	}

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "internboat.db", cfg.DBDSN)
	assert.Equal(t, StoreSQLite, cfg.Store)
	assert.Equal(t, "", cfg.LogFile)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "5000")
	t.Setenv("DB_DSN", "/tmp/reg.db")
	t.Setenv("STORE", "memory")

	cfg := Load()
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "/tmp/reg.db", cfg.DBDSN)
	assert.Equal(t, StoreMemory, cfg.Store)
}

func TestLoadUnknownStoreFallsBack(t *testing.T) {
	t.Setenv("STORE", "cassandra")

	cfg := Load()
	assert.Equal(t, StoreSQLite, cfg.Store)
}
