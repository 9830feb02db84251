// Package config loads dashboard settings from YAML and the environment.
package config

import "time"

// Config is the root configuration handed to the dashboard at construction.
type Config struct {
	API    APIConfig    `yaml:"api"`
	Limits LimitsConfig `yaml:"limits"`
	Log    LogConfig    `yaml:"log"`
}

// APIConfig locates the NLP service.
type APIConfig struct {
	BaseURL   string        `yaml:"base_url"  env:"NLPDASH_API_URL"     env-default:"http://localhost:5000/"`
	Timeout   time.Duration `yaml:"timeout"   env:"NLPDASH_API_TIMEOUT" env-default:"30s"`
	Transport string        `yaml:"transport" env:"NLPDASH_TRANSPORT"   env-default:"std"`
}

// LimitsConfig bounds user input.
type LimitsConfig struct {
	MaxChars int `yaml:"max_chars" env:"NLPDASH_MAX_CHARS" env-default:"200"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"NLPDASH_LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"NLPDASH_LOG_FORMAT" env-default:"console"`
	File   string `yaml:"file"   env:"NLPDASH_LOG_FILE"` // stderr when empty
}
