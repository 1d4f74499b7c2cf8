package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")
	t.Setenv("MONGO_URI", "")
	t.Setenv("MONGO_DB", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "8000", cfg.Port)
	require.Equal(t, "development", cfg.Env)
	require.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	require.Equal(t, "eclatdelune", cfg.Mongo.Database)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9001")
	t.Setenv("ENV", "production")
	t.Setenv("MONGO_URI", "mongodb://mongo:27017")
	t.Setenv("MONGO_DB", "lune")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "9001", cfg.Port)
	require.Equal(t, "production", cfg.Env)
	require.Equal(t, "mongodb://mongo:27017", cfg.Mongo.URI)
	require.Equal(t, "lune", cfg.Mongo.Database)
}
