package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Load_DefaultValues(t *testing.T) {
	ctx := context.Background()

	lookuper := envconfig.MapLookuper(map[string]string{
		"APP_ENVIRONMENT": "prod",
	})

	cfg, err := LoadWithLookuper(ctx, lookuper)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "credentials.json", cfg.Google.CredentialsPath)
	assert.Equal(t, "token.json", cfg.Google.TokenPath)
	assert.Equal(t, "primary", cfg.Google.CalendarID)
	assert.Equal(t, "America/New_York", cfg.Google.TimeZone)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "stdout", cfg.Logging.Output)
	assert.Equal(t, true, cfg.Logging.EnableCaller)
	assert.Equal(t, true, cfg.Logging.EnableStacktrace)
	assert.Equal(t, "prod", cfg.App.Environment)
	assert.Equal(t, false, cfg.IsDebugEnabled())
	assert.Equal(t, time.Second*30, cfg.App.RequestTimeout)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	assert.Equal(t, 0.0, cfg.LLM.Temperature)
}

func TestConfig_Load_CustomValues(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name     string
		envVars  map[string]string
		expected func(*testing.T, *Config)
	}{
		{
			name: "google_configuration",
			envVars: map[string]string{
				"GOOGLE_CALENDAR_ID":      "work@example.com",
				"GOOGLE_CREDENTIALS_PATH": "/etc/stella/credentials.json",
				"GOOGLE_TOKEN_PATH":       "/var/lib/stella/token.json",
				"GOOGLE_TIMEZONE":         "Europe/Berlin",
			},
			expected: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "work@example.com", cfg.Google.CalendarID)
				assert.Equal(t, "/etc/stella/credentials.json", cfg.Google.CredentialsPath)
				assert.Equal(t, "/var/lib/stella/token.json", cfg.Google.TokenPath)
				assert.Equal(t, "Europe/Berlin", cfg.Google.TimeZone)
			},
		},
		{
			name: "server_configuration",
			envVars: map[string]string{
				"SERVER_PORT": "9090",
				"SERVER_HOST": "127.0.0.1",
			},
			expected: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "9090", cfg.Server.Port)
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, "127.0.0.1:9090", cfg.GetServerAddress())
			},
		},
		{
			name: "logging_configuration",
			envVars: map[string]string{
				"LOG_LEVEL":  "debug",
				"LOG_FORMAT": "console",
				"LOG_OUTPUT": "stderr",
			},
			expected: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "console", cfg.Logging.Format)
				assert.Equal(t, "stderr", cfg.Logging.Output)
				assert.Equal(t, true, cfg.IsDebugEnabled())
			},
		},
		{
			name: "llm_configuration",
			envVars: map[string]string{
				"LLM_GATEWAY_URL": "http://gateway:8080/v1",
				"LLM_PROVIDER":    "anthropic",
				"LLM_MODEL":       "claude-sonnet",
				"LLM_MAX_TOKENS":  "4096",
				"LLM_TEMPERATURE": "0.7",
				"LLM_TIMEOUT":     "45s",
			},
			expected: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "http://gateway:8080/v1", cfg.LLM.GatewayURL)
				assert.Equal(t, "anthropic", cfg.LLM.Provider)
				assert.Equal(t, "claude-sonnet", cfg.LLM.Model)
				assert.Equal(t, 4096, cfg.LLM.MaxTokens)
				assert.Equal(t, 0.7, cfg.LLM.Temperature)
				assert.Equal(t, 45*time.Second, cfg.LLM.Timeout)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := LoadWithLookuper(ctx, envconfig.MapLookuper(tc.envVars))
			require.NoError(t, err)
			tc.expected(t, cfg)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		name        string
		envVars     map[string]string
		expectError string
	}{
		{
			name:        "invalid log level",
			envVars:     map[string]string{"LOG_LEVEL": "verbose"},
			expectError: "invalid log level",
		},
		{
			name:        "empty credentials path",
			envVars:     map[string]string{"GOOGLE_CREDENTIALS_PATH": ""},
			expectError: "GOOGLE_CREDENTIALS_PATH",
		},
		{
			name:        "empty token path",
			envVars:     map[string]string{"GOOGLE_TOKEN_PATH": ""},
			expectError: "GOOGLE_TOKEN_PATH",
		},
		{
			name:        "temperature out of range",
			envVars:     map[string]string{"LLM_TEMPERATURE": "2.5"},
			expectError: "LLM_TEMPERATURE",
		},
		{
			name:        "non-positive max tokens",
			envVars:     map[string]string{"LLM_MAX_TOKENS": "0"},
			expectError: "LLM_MAX_TOKENS",
		},
		{
			name:        "empty model",
			envVars:     map[string]string{"LLM_MODEL": ""},
			expectError: "LLM_MODEL",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadWithLookuper(context.Background(), envconfig.MapLookuper(tc.envVars))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.expectError)
		})
	}
}

func TestConfig_EnvironmentHelpers(t *testing.T) {
	testCases := []struct {
		environment string
		production  bool
		development bool
	}{
		{environment: "prod", production: true},
		{environment: "production", production: true},
		{environment: "dev", development: true},
		{environment: "development", development: true},
		{environment: "staging"},
	}

	for _, tc := range testCases {
		t.Run(tc.environment, func(t *testing.T) {
			cfg := &Config{App: AppConfig{Environment: tc.environment}}
			assert.Equal(t, tc.production, cfg.IsProduction())
			assert.Equal(t, tc.development, cfg.IsDevelopment())
		})
	}
}
