package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadSchema(t *testing.T) {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "..", "schemas", "aznet-v1.schema.json"))
	require.NoError(t, err, "failed to read schema file")
	SetSchema(data)
}

func TestParse_AppliesAPIVersion(t *testing.T) {
	cfg, err := Parse([]byte("defaults:\n  resourceGroup: rg1\n"))
	require.NoError(t, err)
	assert.Equal(t, APIVersion, cfg.APIVersion)
	assert.Equal(t, "rg1", cfg.Defaults.ResourceGroup)
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("defaults: [unterminated"))
	require.Error(t, err)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	cfg := &Config{
		APIVersion: APIVersion,
		Defaults: Defaults{
			Subscription:  "00000000-0000-0000-0000-000000000000",
			ResourceGroup: "rg1",
			Location:      "westeurope",
		},
	}
	require.NoError(t, Save(cfg, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestValidate_ValidConfig(t *testing.T) {
	loadSchema(t)
	cfg := &Config{
		APIVersion: APIVersion,
		Defaults:   Defaults{Subscription: "00000000-0000-0000-0000-000000000000"},
	}
	result, err := Validate(cfg)
	require.NoError(t, err)
	assert.True(t, result.Valid, "unexpected errors: %v", result.Errors)
}

func TestValidate_BadSubscription(t *testing.T) {
	loadSchema(t)
	cfg := &Config{
		APIVersion: APIVersion,
		Defaults:   Defaults{Subscription: "not-a-uuid"},
	}
	result, err := Validate(cfg)
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.NotEmpty(t, result.Errors)
}

func TestValidate_SchemaNotLoaded(t *testing.T) {
	orig := schemaBytes
	schemaBytes = nil
	defer func() { schemaBytes = orig }()

	_, err := Validate(&Config{APIVersion: APIVersion})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema not loaded")
}
