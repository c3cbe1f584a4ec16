// Package config loads the application settings: where the OAuth
// credentials and cached token live, and where the completion overlay
// database is kept.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config is the resolved application configuration. All paths have ~
// expanded.
type Config struct {
	CredentialsPath string
	TokenPath       string
	DonePath        string
}

// Load reads .agenda.yaml (working directory or AGENDA_CONFIG_PATH),
// with AGENDA_-prefixed environment variables taking precedence. A local
// .env file is honored first so development credentials stay out of the
// shell profile. A missing config file is fine; the defaults stand.
func Load() (*Config, error) {
	_ = godotenv.Load()

	viper.SetDefault("credentials", "~/.agenda/credentials.json")
	viper.SetDefault("token", "~/.agenda/token.json")
	viper.SetDefault("done", "~/.agenda/done.db")
	viper.SetConfigName(".agenda") // .yaml is implicit
	viper.SetEnvPrefix("AGENDA")
	viper.AutomaticEnv()

	if override := os.Getenv("AGENDA_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("config: read config file: %w", err)
		}
	}

	cfg := &Config{}
	var err error
	if cfg.CredentialsPath, err = homedir.Expand(viper.GetString("credentials")); err != nil {
		return nil, fmt.Errorf("config: expand credentials path: %w", err)
	}
	if cfg.TokenPath, err = homedir.Expand(viper.GetString("token")); err != nil {
		return nil, fmt.Errorf("config: expand token path: %w", err)
	}
	if cfg.DonePath, err = homedir.Expand(viper.GetString("done")); err != nil {
		return nil, fmt.Errorf("config: expand done path: %w", err)
	}
	return cfg, nil
}
