package core

import (
	"errors"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// Production REST endpoints.
const (
	SpotBaseURL    = "https://api-cloud.bitmart.com"
	FuturesBaseURL = "https://api-cloud-v2.bitmart.com"
)

// Version is reported in the User-Agent header.
const Version = "1.0.0"

// DefaultTimeout is applied when Config.Timeout is left at zero by callers of DefaultConfig.
const DefaultTimeout = 5 * time.Second

// Credentials holds the API key, secret and memo of one BitMart account.
type Credentials struct {
	// APIKey is sent as X-BM-KEY on KEYED and SIGNED endpoints.
	APIKey string `json:"api_key"`
	// APISecret keys the HMAC signature of SIGNED endpoints.
	APISecret string `json:"api_secret"`
	// APIMemo is the account memo mixed into every signature.
	APIMemo string `json:"api_memo"`
}

// Config contains all construction options for a client.
type Config struct {
	Credentials *Credentials `json:"credentials,omitempty"`

	// BaseURL overrides the production endpoint of the client being built.
	BaseURL string `json:"base_url" validate:"omitempty,url"`
	// Timeout is the maximum duration of a single HTTP request.
	Timeout   time.Duration `json:"timeout" validate:"min=1ms"`
	UserAgent string        `json:"user_agent"`

	// RateLimitRequests of zero disables client-side throttling.
	RateLimitRequests int           `json:"rate_limit_requests" validate:"min=0"`
	RateLimitPeriod   time.Duration `json:"rate_limit_period" validate:"min=0"`

	LogLevel string         `json:"log_level" validate:"omitempty,oneof=debug info warn error disabled"`
	Logger   zerolog.Logger `json:"-" validate:"-"`
}

// DefaultConfig returns a Config with a 5s timeout, throttling disabled and a
// console logger at info level. Credentials are left empty.
func DefaultConfig() *Config {
	return &Config{
		Timeout:   DefaultTimeout,
		UserAgent: "bitmart-go-sdk-api/" + Version,
		LogLevel:  "info",
		Logger:    DefaultLogger(zerolog.InfoLevel),
	}
}

// ConfigFromEnv returns DefaultConfig populated from BITMART_API_KEY, BITMART_API_SECRET,
// BITMART_API_MEMO and BITMART_BASE_URL.
func ConfigFromEnv() *Config {
	config := DefaultConfig().WithCredentials(&Credentials{
		APIKey:    os.Getenv("BITMART_API_KEY"),
		APISecret: os.Getenv("BITMART_API_SECRET"),
		APIMemo:   os.Getenv("BITMART_API_MEMO"),
	})
	if baseURL := os.Getenv("BITMART_BASE_URL"); baseURL != "" {
		config.BaseURL = baseURL
	}
	return config
}

// DefaultLogger returns a console-backed logger writing to stderr.
func DefaultLogger(level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).
		With().
		Timestamp().
		Str("component", "bitmart").
		Logger()
}

var validate = validator.New()

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	if c.RateLimitRequests > 0 && c.RateLimitPeriod <= 0 {
		return errors.New("RateLimitPeriod must be positive when RateLimitRequests is set")
	}
	return nil
}

// WithCredentials sets the API credentials and returns the config for chaining.
func (c *Config) WithCredentials(creds *Credentials) *Config {
	c.Credentials = creds
	return c
}

// WithBaseURL sets the REST base URL and returns the config for chaining.
func (c *Config) WithBaseURL(baseURL string) *Config {
	c.BaseURL = baseURL
	return c
}

// WithTimeout sets the request timeout and returns the config for chaining.
func (c *Config) WithTimeout(timeout time.Duration) *Config {
	c.Timeout = timeout
	return c
}

// WithRateLimit enables client-side throttling and returns the config for chaining.
func (c *Config) WithRateLimit(requests int, period time.Duration) *Config {
	c.RateLimitRequests = requests
	c.RateLimitPeriod = period
	return c
}

// WithLogger sets the logger and returns the config for chaining.
func (c *Config) WithLogger(logger zerolog.Logger) *Config {
	c.Logger = logger
	return c
}

// WithLogLevel sets the minimum level of the configured logger and returns the config for chaining.
func (c *Config) WithLogLevel(level string) *Config {
	c.LogLevel = level
	return c
}

// ResolvedLogger returns Logger filtered at LogLevel. An unknown level keeps info.
func (c *Config) ResolvedLogger() zerolog.Logger {
	if c.LogLevel == "" {
		return c.Logger
	}
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	return c.Logger.Level(level)
}

// credentials returns a copy so later edits to the caller's struct do not leak in.
func (c *Config) credentials() Credentials {
	if c.Credentials == nil {
		return Credentials{}
	}
	return *c.Credentials
}
