package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Planboard specifics
	Planner   PlannerConfig
	Auth      AuthConfig
	Cache     CacheConfig
	Session   SessionConfig
	RateLimit RateLimitConfig

	// Suggestion provider chain
	Suggest SuggestConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// PlannerConfig points at the upstream plan API that owns the data.
type PlannerConfig struct {
	URL         string
	AccessToken string
}

// AuthConfig carries the static API key clients present as a Bearer token.
// Empty disables auth (local development).
type AuthConfig struct {
	APIKey string
}

type CacheConfig struct {
	ListTTL time.Duration
}

type SessionConfig struct {
	SelectionTTL time.Duration
	AssistantTTL time.Duration
}

type RateLimitConfig struct {
	PerMin int
}

// SuggestConfig holds configuration for the suggestion provider chain.
type SuggestConfig struct {
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	MaxTotalTimeout time.Duration

	DeepSeek DeepSeekConfig
}

// DeepSeekConfig enables the DeepSeek fallback provider when an API key is
// present.
type DeepSeekConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Planboard specifics
	cfg.Planner.URL = viper.GetString("planner.url")
	cfg.Planner.AccessToken = expandEnvVar(viper.GetString("planner.access_token"))
	if plannerURL := viper.GetString("planner_url"); plannerURL != "" {
		cfg.Planner.URL = plannerURL
	}
	if plannerToken := viper.GetString("planner_access_token"); plannerToken != "" {
		cfg.Planner.AccessToken = plannerToken
	}
	if cfg.Planner.URL == "" {
		return nil, fmt.Errorf("planner.url is required")
	}

	cfg.Auth.APIKey = expandEnvVar(viper.GetString("auth.api_key"))
	cfg.Cache.ListTTL = viper.GetDuration("cache.list_ttl")
	cfg.Session.SelectionTTL = viper.GetDuration("session.selection_ttl")
	cfg.Session.AssistantTTL = viper.GetDuration("session.assistant_ttl")
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	// Suggestion provider chain
	cfg.Suggest.FallbackEnabled = viper.GetBool("suggest.fallback_enabled")
	cfg.Suggest.RetryAttempts = viper.GetInt("suggest.retry_attempts")
	cfg.Suggest.RetryDelay = viper.GetDuration("suggest.retry_delay")
	cfg.Suggest.MaxTotalTimeout = viper.GetDuration("suggest.max_total_timeout")
	cfg.Suggest.DeepSeek.APIKey = expandEnvVar(viper.GetString("suggest.deepseek.api_key"))
	cfg.Suggest.DeepSeek.BaseURL = viper.GetString("suggest.deepseek.base_url")
	cfg.Suggest.DeepSeek.Model = viper.GetString("suggest.deepseek.model")
	if dsKey := viper.GetString("deepseek_api_key"); dsKey != "" {
		cfg.Suggest.DeepSeek.APIKey = dsKey
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("cache.list_ttl", "30s")
	viper.SetDefault("session.selection_ttl", "24h")
	viper.SetDefault("session.assistant_ttl", "2h")
	viper.SetDefault("rate_limit.per_min", 30)

	viper.SetDefault("suggest.fallback_enabled", true)
	viper.SetDefault("suggest.retry_attempts", 3)
	viper.SetDefault("suggest.retry_delay", "1s")
	viper.SetDefault("suggest.max_total_timeout", "60s")
	viper.SetDefault("suggest.deepseek.model", "deepseek-chat")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}
