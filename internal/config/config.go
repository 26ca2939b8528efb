package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	Database  DatabaseConfig
	Auth      AuthConfig
	Places    PlacesConfig
	Curator   CuratorConfig
	Spotlight SpotlightConfig
	Breaker   BreakerConfig
}

type ServerConfig struct {
	Port            int
	GinMode         string // debug, release, test
	ShutdownTimeout time.Duration
}

type LogConfig struct {
	Level  string
	Format string // json, console
}

type DatabaseConfig struct {
	URL          string
	MaxOpenConns int
	MaxIdleConns int
	AutoMigrate  bool
}

type AuthConfig struct {
	JWTSecret string
}

// PlacesConfig configures the Google Places (New) text search client.
type PlacesConfig struct {
	APIKey            string
	BaseURL           string
	Timeout           time.Duration
	RequestsPerSecond float64
	Burst             int
	MaxResultCount    int
}

type CuratorConfig struct {
	Provider     string // gemini, openai
	GeminiAPIKey string
	GeminiModel  string
	OpenAIAPIKey string
	OpenAIModel  string
	Timeout      time.Duration
	MaxRetries   int
}

type SpotlightConfig struct {
	CacheTTL        time.Duration
	MinRating       float64
	DefaultRadiusKm float64
}

// BreakerConfig is shared by the places and curator circuit breakers.
type BreakerConfig struct {
	Interval     time.Duration
	Timeout      time.Duration
	MinRequests  uint32
	FailureRatio float64
}

// legacyEnv maps config keys to the plain environment names used by deployments.
var legacyEnv = map[string]string{
	"server.port":          "PORT",
	"database.url":         "POSTGRES_URL",
	"auth.jwtsecret":       "JWT_SECRET",
	"places.apikey":        "GOOGLE_MAPS_API_KEY",
	"curator.provider":     "CURATOR_PROVIDER",
	"curator.geminiapikey": "GEMINI_API_KEY",
	"curator.geminimodel":  "GEMINI_MODEL",
	"curator.openaiapikey": "OPENAI_API_KEY",
	"curator.openaimodel":  "OPENAI_MODEL",
	"log.level":            "LOG_LEVEL",
	"log.format":           "LOG_FORMAT",
}

// Load reads .env, an optional config.yaml and the environment.
func Load() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	setDefaults(v)

	v.SetEnvPrefix("ROAM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range legacyEnv {
		if err := v.BindEnv(key, "ROAM_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")), env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.ginmode", "release")
	v.SetDefault("server.shutdowntimeout", 10*time.Second)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("database.url", "")
	v.SetDefault("database.maxopenconns", 20)
	v.SetDefault("database.maxidleconns", 5)
	v.SetDefault("database.automigrate", true)

	v.SetDefault("auth.jwtsecret", "")

	v.SetDefault("places.apikey", "")
	v.SetDefault("places.baseurl", "https://places.googleapis.com/v1/places:searchText")
	v.SetDefault("places.timeout", 10*time.Second)
	v.SetDefault("places.requestspersecond", 10.0)
	v.SetDefault("places.burst", 10)
	v.SetDefault("places.maxresultcount", 20)

	v.SetDefault("curator.provider", "gemini")
	v.SetDefault("curator.geminiapikey", "")
	v.SetDefault("curator.geminimodel", "gemini-1.5-flash")
	v.SetDefault("curator.openaiapikey", "")
	v.SetDefault("curator.openaimodel", "gpt-4o-mini")
	v.SetDefault("curator.timeout", 30*time.Second)
	v.SetDefault("curator.maxretries", 2)

	v.SetDefault("spotlight.cachettl", 30*time.Minute)
	v.SetDefault("spotlight.minrating", 4.2)
	v.SetDefault("spotlight.defaultradiuskm", 50.0)

	v.SetDefault("breaker.interval", time.Minute)
	v.SetDefault("breaker.timeout", 30*time.Second)
	v.SetDefault("breaker.minrequests", 10)
	v.SetDefault("breaker.failureratio", 0.6)
}

// Validate reports every missing required setting at once.
func (c *Config) Validate() error {
	var errs []error
	if c.Database.URL == "" {
		errs = append(errs, errors.New("database url is required (POSTGRES_URL)"))
	}
	if c.Auth.JWTSecret == "" {
		errs = append(errs, errors.New("jwt secret is required (JWT_SECRET)"))
	}
	if c.Places.APIKey == "" {
		errs = append(errs, errors.New("places api key is required (GOOGLE_MAPS_API_KEY)"))
	}

	switch strings.ToLower(c.Curator.Provider) {
	case "gemini":
		if c.Curator.GeminiAPIKey == "" {
			errs = append(errs, errors.New("GEMINI_API_KEY is required when using Gemini provider"))
		}
	case "openai":
		if c.Curator.OpenAIAPIKey == "" {
			errs = append(errs, errors.New("OPENAI_API_KEY is required when using OpenAI provider"))
		}
	default:
		errs = append(errs, fmt.Errorf("unsupported curator provider: %s. Use 'openai' or 'gemini'", c.Curator.Provider))
	}

	if c.Curator.MaxRetries < 0 {
		errs = append(errs, errors.New("curator max retries must not be negative"))
	}

	return errors.Join(errs...)
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}
