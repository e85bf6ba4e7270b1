package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	require.Equal(t, "municipalities", cfg.DefaultLevel)
	require.Equal(t, "meta", cfg.MetaTable)
	require.Equal(t, 25, cfg.BatchSize)
	require.Equal(t, 2*time.Second, cfg.ReadTimeout)
	require.Equal(t, 30*time.Second, cfg.WriteTimeout)
	require.Equal(t, 2, cfg.RetryMax)

	require.Equal(t, []string{"municipalities", "counties", "provinces"}, cfg.LevelOrder)
	table, ok := cfg.Table("municipalities")
	require.True(t, ok)
	require.Equal(t, "osm_prg_gminy_v1", table)
	_, ok = cfg.Table("districts")
	require.False(t, ok)
}

func TestLoadLevelsFromEnv(t *testing.T) {
	t.Setenv("LEVELS", "provinces:woj_v2, municipalities:gminy_v2,,bad,:x,y:")
	t.Setenv("DEFAULT_LEVEL", "provinces")
	t.Setenv("BATCH_SIZE", "10")
	t.Setenv("READ_TIMEOUT_MS", "500")

	cfg := Load()
	require.Equal(t, []string{"provinces", "municipalities"}, cfg.LevelOrder)
	table, ok := cfg.Table("provinces")
	require.True(t, ok)
	require.Equal(t, "woj_v2", table)
	require.Equal(t, "provinces", cfg.DefaultLevel)
	require.Equal(t, 10, cfg.BatchSize)
	require.Equal(t, 500*time.Millisecond, cfg.ReadTimeout)
}

func TestLoadIgnoresBadNumbers(t *testing.T) {
	t.Setenv("BATCH_SIZE", "-3")
	t.Setenv("RETRY_MAX", "abc")
	cfg := Load()
	require.Equal(t, 25, cfg.BatchSize)
	require.Equal(t, 2, cfg.RetryMax)
}
