package config

import (
	"os"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Env:                      "production",
		Port:                     "8000",
		JWTSecret:                "secure-secret-at-least-32-chars-long",
		DBDriver:                 "postgres",
		DBPassword:               "secure-password",
		DBSSLMode:                "require",
		DBSchemaMode:             "sql",
		DBConnMaxLifetimeMinutes: 5,
	}
}

func TestConfig_ValidateSSLMode(t *testing.T) {
	tests := []struct {
		name        string
		env         string
		sslMode     string
		expectError bool
	}{
		{"Production with empty SSL mode", "production", "", true},
		{"Production with disable SSL mode", "production", "disable", true},
		{"Production with require SSL mode", "production", "require", false},
		{"Prod with verify-full SSL mode", "prod", "verify-full", false},
		{"Development with disable SSL mode", "development", "disable", false},
		{"Test with empty SSL mode", "test", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			c.Env = tt.env
			c.DBSSLMode = tt.sslMode

			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_ValidateProductionRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"default secret", func(c *Config) { c.JWTSecret = defaultJWTSecret }},
		{"short secret", func(c *Config) { c.JWTSecret = "short" }},
		{"weak db password", func(c *Config) { c.DBPassword = "password" }},
		{"sqlite driver", func(c *Config) { c.DBDriver = "sqlite" }},
		{"auto schema", func(c *Config) { c.DBSchemaMode = "auto" }},
		{"unknown driver", func(c *Config) { c.DBDriver = "mysql" }},
		{"missing port", func(c *Config) { c.Port = "" }},
		{"missing secret", func(c *Config) { c.JWTSecret = "" }},
		{"fixtures", func(c *Config) { c.SeedFixtures = "fixtures.yml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)
			assert.Error(t, c.Validate())
		})
	}

	assert.NoError(t, validConfig().Validate())
}

func TestConfig_AccessTokenTTL(t *testing.T) {
	c := &Config{AccessTokenExpireMinutes: 30}
	assert.Equal(t, 30*time.Minute, c.AccessTokenTTL())

	c.AccessTokenExpireMinutes = 0
	assert.Zero(t, c.AccessTokenTTL())
}

func TestLoadConfig_DefaultsAndNormalization(t *testing.T) {
	defer os.Unsetenv("APP_ENV")
	defer os.Unsetenv("DB_SSLMODE")
	defer os.Unsetenv("ACCESS_TOKEN_EXPIRE_MINUTES")
	defer viper.Reset()

	os.Setenv("APP_ENV", "development")
	os.Setenv("DB_SSLMODE", "  DISABLE  ")
	os.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "45")

	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "disable", c.DBSSLMode)
	assert.Equal(t, "8000", c.Port)
	assert.Equal(t, 45*time.Minute, c.AccessTokenTTL())
	assert.Equal(t, "postgres", c.DBDriver)
	assert.False(t, c.IsProduction())
}
