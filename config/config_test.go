package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("CI", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "food-folio", cfg.DBName)
	assert.Equal(t, "6379", cfg.RedisPort)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, "us-east-1", cfg.AWSRegion)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("CI", "")
	t.Setenv("SERVER_PORT", "9191")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("RECIPE_API_KEY", "abc-123")
	t.Setenv("RECIPE_API_URL", "http://localhost:9999")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("S3_BUCKET_NAME", "my-pictures")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9191", cfg.ServerPort)
	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, "abc-123", cfg.RecipeAPIKey)
	assert.Equal(t, "http://localhost:9999", cfg.RecipeAPIURL)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, "my-pictures", cfg.S3Bucket)
}

func TestLoadConfigRejectsBadRedisDB(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("CI", "")
	t.Setenv("REDIS_DB", "not-a-number")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REDIS_DB")
}

func TestValidateConfigRequiresRecipeKeyOutsideTest(t *testing.T) {
	t.Setenv("ENV", "development")
	t.Setenv("CI", "")

	err := ValidateConfig(&Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RECIPE_API_KEY")
}

func TestValidateConfigProductionRequirements(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("CI", "")

	err := ValidateConfig(&Config{RecipeAPIKey: "abc"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
	assert.Contains(t, err.Error(), "DB_PASSWORD")

	err = ValidateConfig(&Config{
		RecipeAPIKey: "abc",
		JWTSecret:    "secret",
		DBPassword:   "pass",
	})
	assert.NoError(t, err)
}

func TestGetEnvironment(t *testing.T) {
	t.Setenv("CI", "")

	t.Setenv("ENV", "production")
	assert.Equal(t, Production, GetEnvironment())
	assert.True(t, IsProduction())

	t.Setenv("ENV", "test")
	assert.Equal(t, Test, GetEnvironment())
	assert.True(t, IsTest())

	t.Setenv("ENV", "")
	assert.Equal(t, Development, GetEnvironment())
	assert.True(t, IsDevelopment())

	t.Setenv("CI", "true")
	assert.Equal(t, CI, GetEnvironment())
}
