// Package config loads launcher settings from defaults, an optional
// .devlaunch.yaml in the working directory, and DEVLAUNCH_* environment
// variables, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/melih/devlaunch/internal/core/domain"
)

// Config holds all configuration values for the launcher. The defaults
// reproduce the original launch behavior exactly: a bare `devlaunch up`
// builds and runs the app the same way every time.
type Config struct {
	// AppName is used for the container name and the image tag.
	AppName string `mapstructure:"app_name"`

	// Port is mapped 1:1 between host and container.
	Port int `mapstructure:"port"`

	// Required source files, relative to the working directory.
	AppFile    string `mapstructure:"app_file"`
	Stylesheet string `mapstructure:"stylesheet"`

	// ConfigFile is mounted read-only when present.
	ConfigFile string `mapstructure:"config_file"`

	// SettleDelay is how long to wait after start before opening the browser.
	SettleDelay time.Duration `mapstructure:"settle_delay"`

	// WaitReady replaces the blind settle delay with an HTTP readiness poll.
	WaitReady bool `mapstructure:"wait_ready"`

	// RepoURL, when set, builds the image from a git clone instead of the
	// working directory.
	RepoURL string `mapstructure:"repo_url"`

	// OpenBrowser controls the final browser-open step.
	OpenBrowser bool `mapstructure:"open_browser"`
}

// Load reads configuration via viper. The passed viper instance is expected
// to carry any flag bindings; Load adds defaults, the env prefix, and the
// optional config file on top.
func Load(v *viper.Viper) (*Config, error) {
	v.SetDefault("app_name", domain.DefaultAppName)
	v.SetDefault("port", domain.DefaultPort)
	v.SetDefault("app_file", domain.DefaultAppFile)
	v.SetDefault("stylesheet", domain.DefaultStylesheet)
	v.SetDefault("config_file", domain.DefaultConfigFile)
	v.SetDefault("settle_delay", 2*time.Second)
	v.SetDefault("wait_ready", false)
	v.SetDefault("repo_url", "")
	v.SetDefault("open_browser", true)

	v.SetEnvPrefix("DEVLAUNCH")
	v.AutomaticEnv()

	v.SetConfigName(".devlaunch")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d", cfg.Port)
	}
	return &cfg, nil
}
