// Package config loads service configuration from an optional YAML file
// and the environment. Environment variables override file values.
package config

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds everything the HTTP service needs to run.
type Config struct {
	Address       string        `yaml:"address" env:"DFACC_ADDRESS" env-default:":8080"`
	Debug         bool          `yaml:"debug" env:"DFACC_DEBUG" env-default:"false"`
	AssetsDir     string        `yaml:"assets_dir" env:"DFACC_ASSETS_DIR" env-default:"static/logo"`
	ChromiumPath  string        `yaml:"chromium_path" env:"DFACC_CHROMIUM_PATH"`
	BaseURL       string        `yaml:"base_url" env:"DFACC_BASE_URL"`
	ExportTimeout time.Duration `yaml:"export_timeout" env:"DFACC_EXPORT_TIMEOUT" env-default:"30s"`
	ReadTimeout   time.Duration `yaml:"read_timeout" env:"DFACC_READ_TIMEOUT" env-default:"30s"`
	WriteTimeout  time.Duration `yaml:"write_timeout" env:"DFACC_WRITE_TIMEOUT" env-default:"2m"`
}

// Load reads configuration from the YAML file at path, then lets the
// environment override it.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default builds configuration from the environment alone.
func Default() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
