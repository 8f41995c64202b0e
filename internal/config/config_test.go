package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	t.Setenv("STAFFING_API_BASE_URL", "")
	t.Setenv("STAFFING_NEO4J_URI", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURL, cfg.API.BaseURL)
	assert.Equal(t, DefaultTimeoutSeconds, cfg.API.TimeoutSeconds)
	assert.Equal(t, "bolt://localhost:7687", cfg.Neo4j.URI)
	assert.Equal(t, "neo4j", cfg.Neo4j.Username)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestConfigEnvOverride(t *testing.T) {
	t.Setenv("STAFFING_API_BASE_URL", "https://staffing.example.com/api/v1")
	t.Setenv("STAFFING_NEO4J_URI", "bolt://graph.example.com:7687")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://staffing.example.com/api/v1", cfg.API.BaseURL)
	assert.Equal(t, "bolt://graph.example.com:7687", cfg.Neo4j.URI)
}

func TestConfigValidationMissingBaseURL(t *testing.T) {
	cfg := &Config{
		API:   APIConfig{BaseURL: "", TimeoutSeconds: 30},
		Neo4j: Neo4jConfig{URI: "bolt://localhost:7687"},
	}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "api.base_url")
}

func TestConfigValidationBadTimeout(t *testing.T) {
	cfg := &Config{
		API:   APIConfig{BaseURL: DefaultBaseURL, TimeoutSeconds: 0},
		Neo4j: Neo4jConfig{URI: "bolt://localhost:7687"},
	}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "timeout")
}

func TestNeo4jStringMasksPassword(t *testing.T) {
	n := Neo4jConfig{URI: "bolt://localhost:7687", Username: "neo4j", Password: "hunter2"}
	s := n.String()
	assert.NotContains(t, s, "hunter2")
	assert.Contains(t, s, "bolt://localhost:7687")
}
