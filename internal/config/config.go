// Package config provides configuration management for the Copascore
// prediction service.
package config

import "time"

// Config represents the complete application configuration
type Config struct {
	App       AppConfig       `mapstructure:"app" validate:"required"`
	Server    ServerConfig    `mapstructure:"server" validate:"required"`
	Artifacts ArtifactsConfig `mapstructure:"artifacts" validate:"required"`
	Predictor PredictorConfig `mapstructure:"predictor" validate:"required"`
	Provider  ProviderConfig  `mapstructure:"provider"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// ServerConfig represents the HTTP server configuration
type ServerConfig struct {
	Address         string   `mapstructure:"address" validate:"required"`
	AllowedOrigins  []string `mapstructure:"allowed_origins"`
	ShutdownTimeout int      `mapstructure:"shutdown_timeout_seconds" validate:"gte=0"`
}

// ArtifactsConfig holds the paths of the serving artifacts loaded at startup.
// The vocabulary and model are required; the remaining sources degrade to
// absent features when their files are missing.
type ArtifactsConfig struct {
	VocabularyPath string   `mapstructure:"vocabulary_path" validate:"required"`
	ModelPath      string   `mapstructure:"model_path" validate:"required"`
	MatchDataPath  string   `mapstructure:"match_data_path" validate:"required"`
	RatingsPath    string   `mapstructure:"ratings_path"`
	RosterPath     string   `mapstructure:"roster_path"`
	TeamDataPaths  []string `mapstructure:"team_data_paths"`
}

// PredictorConfig represents prediction pipeline configuration
type PredictorConfig struct {
	ExplainerEnabled bool `mapstructure:"explainer_enabled"`
	CacheTTLSeconds  int  `mapstructure:"cache_ttl_seconds" validate:"required,gt=0"`
}

// ProviderConfig represents the live data provider configuration
type ProviderConfig struct {
	Enabled         bool    `mapstructure:"enabled"`
	BaseURL         string  `mapstructure:"base_url" validate:"omitempty,url"`
	APIToken        string  `mapstructure:"api_token"`
	RefreshSchedule string  `mapstructure:"refresh_schedule"`
	TeamIDs         []int   `mapstructure:"team_ids"`
	RateLimit       float64 `mapstructure:"rate_limit" validate:"gte=0"`
	TimeoutSeconds  int     `mapstructure:"timeout_seconds" validate:"gte=0"`
	MaxRetries      int     `mapstructure:"max_retries" validate:"gte=0"`
}

// CacheTTL returns the prediction cache TTL as a duration
func (c *PredictorConfig) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

// Timeout returns the provider request timeout as a duration
func (c *ProviderConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
