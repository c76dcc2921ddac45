package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config represents the application configuration
type Config struct {
	// Google API Configuration
	Google GoogleConfig `env:", prefix=GOOGLE_"`

	// Server Configuration
	Server ServerConfig `env:", prefix=SERVER_"`

	// Logging Configuration
	Logging LoggingConfig `env:", prefix=LOG_"`

	// Application Configuration
	App AppConfig `env:", prefix=APP_"`

	// LLM Configuration
	LLM LLMConfig `env:", prefix=LLM_"`
}

// GoogleConfig holds Google Calendar and Gmail API related configuration
type GoogleConfig struct {
	// CredentialsPath is the path to the OAuth client secret file
	CredentialsPath string `env:"CREDENTIALS_PATH, default=credentials.json"`

	// TokenPath is the path to the cached OAuth token file
	TokenPath string `env:"TOKEN_PATH, default=token.json"`

	// CalendarID is the target Google Calendar ID to use
	CalendarID string `env:"CALENDAR_ID, default=primary"`

	// TimeZone is the default timezone for interpreting user date inputs
	TimeZone string `env:"TIMEZONE, default=America/New_York"`
}

// ServerConfig holds HTTP server related configuration
type ServerConfig struct {
	// Port is the port the server will listen on
	Port string `env:"PORT, default=8080"`

	// Host is the host the server will bind to
	Host string `env:"HOST, default=0.0.0.0"`
}

// LoggingConfig holds logging related configuration
type LoggingConfig struct {
	// Level sets the log level (debug, info, warn, error)
	Level string `env:"LEVEL, default=info"`

	// Format sets the log format (json, console)
	Format string `env:"FORMAT, default=json"`

	// Output sets the log output destination (stdout, stderr, file path)
	Output string `env:"OUTPUT, default=stdout"`

	// EnableCaller adds caller information to log entries
	EnableCaller bool `env:"ENABLE_CALLER, default=true"`

	// EnableStacktrace adds stacktrace to error level logs
	EnableStacktrace bool `env:"ENABLE_STACKTRACE, default=true"`
}

// AppConfig holds general application configuration
type AppConfig struct {
	// Environment specifies the deployment environment (dev, staging, prod)
	Environment string `env:"ENVIRONMENT, default=dev"`

	// RequestTimeout sets the maximum duration for handling requests
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT, default=30s"`
}

// LLMConfig holds LLM provider configuration for the agent driver
type LLMConfig struct {
	// GatewayURL is the URL of the Inference Gateway or OpenAI-compatible API endpoint
	GatewayURL string `env:"GATEWAY_URL, default=http://localhost:8080/v1"`

	// Provider is the LLM provider to use through the gateway
	Provider string `env:"PROVIDER, default=openai"`

	// Model is the specific model to use
	Model string `env:"MODEL, default=gpt-4o-mini"`

	// APIKey authenticates against the gateway, when required
	APIKey string `env:"API_KEY"`

	// Timeout is the timeout for LLM requests
	Timeout time.Duration `env:"TIMEOUT, default=30s"`

	// MaxTokens is the maximum number of tokens to generate
	MaxTokens int `env:"MAX_TOKENS, default=2048"`

	// Temperature controls randomness in generation (0.0 to 2.0)
	Temperature float64 `env:"TEMPERATURE, default=0.0"`
}

// Load loads configuration from environment variables
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// LoadWithLookuper loads configuration using a custom lookuper (useful for testing)
func LoadWithLookuper(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("failed to process configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate validates the configuration values
func (c *Config) Validate() error {
	if c.Google.CredentialsPath == "" {
		return fmt.Errorf("GOOGLE_CREDENTIALS_PATH must not be empty")
	}
	if c.Google.TokenPath == "" {
		return fmt.Errorf("GOOGLE_TOKEN_PATH must not be empty")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level '%s', must be one of: debug, info, warn, error", c.Logging.Level)
	}

	if c.LLM.GatewayURL == "" {
		return fmt.Errorf("LLM_GATEWAY_URL must not be empty")
	}
	if c.LLM.Model == "" {
		return fmt.Errorf("LLM_MODEL must not be empty")
	}
	if c.LLM.Temperature < 0.0 || c.LLM.Temperature > 2.0 {
		return fmt.Errorf("LLM_TEMPERATURE must be between 0.0 and 2.0, got %f", c.LLM.Temperature)
	}
	if c.LLM.MaxTokens <= 0 {
		return fmt.Errorf("LLM_MAX_TOKENS must be greater than 0, got %d", c.LLM.MaxTokens)
	}

	return nil
}

// GetServerAddress returns the formatted server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// IsProduction returns true if the application is running in production
func (c *Config) IsProduction() bool {
	return c.App.Environment == "prod" || c.App.Environment == "production"
}

// IsDevelopment returns true if the application is running in development
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "dev" || c.App.Environment == "development"
}

// IsDebugEnabled returns true if debug mode is enabled
func (c *Config) IsDebugEnabled() bool {
	return c.Logging.Level == "debug" || c.IsDevelopment()
}
