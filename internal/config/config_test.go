package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		envVars     map[string]string
		expectError bool
		errorMsg    string
	}{
		{
			name: "Success with minimal required config",
			envVars: map[string]string{
				"JWT_SECRET": "test-secret",
			},
			expectError: false,
		},
		{
			name: "Success with all config specified",
			envVars: map[string]string{
				"SERVER_HOST":    "localhost",
				"PORT":           "9090",
				"MONGODB_URI":    "mongodb://db.example.com:27017",
				"DB_NAME":        "testdb",
				"FRONTEND_URL":   "https://shop.example.com",
				"JWT_SECRET":     "test-secret",
				"JWT_EXPIRATION": "12h",
				"LOG_LEVEL":      "debug",
				"LOG_FORMAT":     "console",
			},
			expectError: false,
		},
		{
			name: "Error - missing JWT secret",
			envVars: map[string]string{
				"JWT_SECRET": "",
			},
			expectError: true,
			errorMsg:    "JWT secret is required",
		},
		{
			name: "Error - invalid server port",
			envVars: map[string]string{
				"PORT":       "99999",
				"JWT_SECRET": "test-secret",
			},
			expectError: true,
			errorMsg:    "invalid server port",
		},
		{
			name: "Error - invalid log level",
			envVars: map[string]string{
				"LOG_LEVEL":  "invalid",
				"JWT_SECRET": "test-secret",
			},
			expectError: true,
			errorMsg:    "invalid log level",
		},
		{
			name: "Error - invalid log format",
			envVars: map[string]string{
				"LOG_FORMAT": "xml",
				"JWT_SECRET": "test-secret",
			},
			expectError: true,
			errorMsg:    "invalid log format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()

			for key, value := range tt.envVars {
				os.Setenv(key, value)
			}

			cfg, err := Load()

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				require.NotNil(t, cfg)
			}

			os.Clearenv()
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	os.Clearenv()
	os.Setenv("JWT_SECRET", "test-secret")
	defer os.Clearenv()

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 6600, cfg.Server.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Database.URI)
	assert.Equal(t, "storefront", cfg.Database.Database)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "http://localhost:3000", cfg.CORS.AllowedOrigin)
	assert.Equal(t, "0.0.0.0:6600", cfg.Server.Address())
}

func TestLoad_TokenTTLInSeconds(t *testing.T) {
	os.Clearenv()
	os.Setenv("JWT_SECRET", "test-secret")
	os.Setenv("JWT_EXPIRATION", "3600")
	defer os.Clearenv()

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
}
