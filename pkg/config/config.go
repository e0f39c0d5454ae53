// Copyright (c) 2025, The gtcalc Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads gtcalc settings from defaults, an optional YAML
// config file, an optional .env file and GTCALC_* environment variables, in
// increasing order of precedence.
//
//	# ~/.gtcalc.yaml
//	catalogs:
//	  - ~/gtnh/recipes.json.zst
//	log_level: info
//	server:
//	  port: 8080
//	search:
//	  cache_size: 512
//
// Environment variables use the key path in upper case with dots replaced by
// underscores, for example GTCALC_SERVER_PORT or GTCALC_CATALOGS (comma
// separated).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/gtnh-tools/gtcalc/pkg/defaults"
	gterrors "github.com/gtnh-tools/gtcalc/pkg/errors"
	"github.com/gtnh-tools/gtcalc/pkg/validate"
)

const (
	// EnvPrefix prefixes every environment variable read by Load.
	EnvPrefix = "GTCALC"

	configName = ".gtcalc"
)

// Config holds all gtcalc settings.
type Config struct {
	Catalogs []string `mapstructure:"catalogs" yaml:"catalogs" validate:"dive,location"`
	// ValidateSchema checks catalogs against the JSON schema before decoding.
	ValidateSchema bool         `mapstructure:"validate" yaml:"validate"`
	LogLevel       string       `mapstructure:"log_level" yaml:"log_level" validate:"loglevel"`
	Server         ServerConfig `mapstructure:"server" yaml:"server"`
	Search         SearchConfig `mapstructure:"search" yaml:"search"`
	Fetch          FetchConfig  `mapstructure:"fetch" yaml:"fetch"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Address         string        `mapstructure:"address" yaml:"address"`
	Port            int           `mapstructure:"port" yaml:"port" validate:"min=1,max=65535"`
	RateLimit       float64       `mapstructure:"rate_limit" yaml:"rate_limit" validate:"gt=0"`
	RateLimitBurst  int           `mapstructure:"rate_limit_burst" yaml:"rate_limit_burst" validate:"min=1"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout" validate:"gt=0"`
}

// SearchConfig configures the keyword result cache. A size of zero disables
// caching.
type SearchConfig struct {
	CacheSize int           `mapstructure:"cache_size" yaml:"cache_size" validate:"gte=0"`
	CacheTTL  time.Duration `mapstructure:"cache_ttl" yaml:"cache_ttl" validate:"gte=0"`
}

// FetchConfig configures remote catalog downloads.
type FetchConfig struct {
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout" validate:"gt=0"`
	Retries int           `mapstructure:"retries" yaml:"retries" validate:"gte=0,lte=10"`
}

// Options controls where Load looks for settings.
type Options struct {
	// ConfigFile is an explicit config file. When set it must exist.
	ConfigFile string
	// EnvFile is a dotenv file; missing files are ignored. Defaults to ".env".
	EnvFile string
	// SearchPaths are directories searched for .gtcalc.yaml when ConfigFile
	// is empty. Defaults to the home directory and the working directory.
	SearchPaths []string
}

// Load resolves the configuration.
func Load(opts Options) (*Config, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, gterrors.Wrap(gterrors.ErrCodeInvalidRequest, "failed to load env file", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := readConfigFile(v, opts); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, gterrors.Wrap(gterrors.ErrCodeInvalidRequest, "failed to decode config", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	slog.Debug("configuration loaded",
		"file", v.ConfigFileUsed(),
		"catalogs", len(cfg.Catalogs),
		"port", cfg.Server.Port)

	return &cfg, nil
}

// Default returns the configuration with only built-in defaults applied.
func Default() *Config {
	return &Config{
		Catalogs: []string{},
		LogLevel: "info",
		Server: ServerConfig{
			Port:            8080,
			RateLimit:       float64(defaults.ServerRateLimit),
			RateLimitBurst:  defaults.ServerRateLimitBurst,
			ShutdownTimeout: defaults.ServerShutdownTimeout,
		},
		Search: SearchConfig{
			CacheSize: defaults.SearchCacheSize,
			CacheTTL:  defaults.SearchCacheTTL,
		},
		Fetch: FetchConfig{
			Timeout: defaults.CatalogFetchTimeout,
			Retries: defaults.CatalogFetchRetries,
		},
	}
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return gterrors.WrapWithContext(gterrors.ErrCodeInvalidRequest, "invalid configuration", err,
			map[string]any{"fields": validate.FormatError(err)})
	}
	return nil
}

// ListenAddress returns the host:port the server binds to.
func (c *Config) ListenAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}

func readConfigFile(v *viper.Viper, opts Options) error {
	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return gterrors.WrapWithContext(gterrors.ErrCodeInvalidRequest, "failed to read config file", err,
				map[string]any{"file": opts.ConfigFile})
		}
		return nil
	}

	paths := opts.SearchPaths
	if len(paths) == 0 {
		if home, err := os.UserHomeDir(); err == nil {
			paths = append(paths, home)
		}
		paths = append(paths, ".")
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetConfigName(configName)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return gterrors.Wrap(gterrors.ErrCodeInvalidRequest, "failed to read config file", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("catalogs", d.Catalogs)
	v.SetDefault("validate", d.ValidateSchema)
	v.SetDefault("log_level", d.LogLevel)

	v.SetDefault("server.address", d.Server.Address)
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("server.rate_limit", d.Server.RateLimit)
	v.SetDefault("server.rate_limit_burst", d.Server.RateLimitBurst)
	v.SetDefault("server.shutdown_timeout", d.Server.ShutdownTimeout)

	v.SetDefault("search.cache_size", d.Search.CacheSize)
	v.SetDefault("search.cache_ttl", d.Search.CacheTTL)

	v.SetDefault("fetch.timeout", d.Fetch.Timeout)
	v.SetDefault("fetch.retries", d.Fetch.Retries)
}
