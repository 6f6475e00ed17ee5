// Package config loads rover's runtime settings from flags, environment
// variables and an optional config file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"rover/internal/logging"
	"rover/internal/route"
	"rover/internal/status"
	"rover/internal/telemetry"
)

// Config captures runtime configuration for the application.
type Config struct {
	App       App       `mapstructure:"app"`
	Logging   Logging   `mapstructure:"log"`
	Telemetry Telemetry `mapstructure:"otel"`
	// File is the config file that was read, empty when none was found.
	File string `mapstructure:"-"`
}

type App struct {
	StartPath  string `mapstructure:"start"`
	Fallback   string `mapstructure:"fallback"`
	AppVersion string `mapstructure:"version"`
}

type Logging struct {
	FilePath string `mapstructure:"file"`
	Level    string `mapstructure:"level"`
}

type Telemetry struct {
	Endpoint    string `mapstructure:"endpoint"`
	ServiceName string `mapstructure:"service"`
	Insecure    bool   `mapstructure:"insecure"`
}

const (
	envPrefix  = "ROVER"
	configName = "rover"
)

// flag name -> config key
var flagKeys = map[string]string{
	"start":       "app.start",
	"fallback":    "app.fallback",
	"app-version": "app.version",
	"log-file":    "log.file",
	"log-level":   "log.level",
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("rover", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.String("start", route.Root, "path to open at startup")
	fs.String("fallback", route.FallbackRoot.String(), "unmatched path policy: root or not-found")
	fs.String("app-version", status.DefaultAppVersion, "version shown in the status bar")
	fs.String("log-file", logging.DefaultLogFile, "path to the log file")
	fs.String("log-level", "info", "log level (debug, info, warn, error)")
	fs.String("config", "", "config file (toml, yaml or json)")
	fs.SortFlags = false
	return fs
}

// Usage returns the flag help text.
func Usage() string {
	return "Usage: rover [flags]\n\n" + newFlagSet().FlagUsages()
}

// Load parses configuration. Precedence is flags, then ROVER_* environment
// variables, then the config file, then defaults. A --help flag yields
// pflag.ErrHelp.
func Load(args []string) (Config, error) {
	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return Config{}, err
		}
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}

	v := viper.New()
	v.SetDefault("app.start", route.Root)
	v.SetDefault("app.fallback", route.FallbackRoot.String())
	v.SetDefault("app.version", status.DefaultAppVersion)
	v.SetDefault("log.file", logging.DefaultLogFile)
	v.SetDefault("log.level", "info")
	v.SetDefault("otel.endpoint", "")
	v.SetDefault("otel.service", telemetry.DefaultServiceName)
	v.SetDefault("otel.insecure", false)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("otel.endpoint", "ROVER_OTEL_ENDPOINT", "OTEL_EXPORTER_OTLP_ENDPOINT")
	_ = v.BindEnv("otel.service", "ROVER_OTEL_SERVICE", "OTEL_SERVICE_NAME")
	_ = v.BindEnv("otel.insecure", "ROVER_OTEL_INSECURE", "OTEL_EXPORTER_OTLP_INSECURE")

	for name, key := range flagKeys {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	file, err := readConfigFile(v, fs)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.File = file
	return cfg, nil
}

func readConfigFile(v *viper.Viper, fs *pflag.FlagSet) (string, error) {
	explicit, _ := fs.GetString("config")
	if explicit == "" {
		explicit = os.Getenv(envPrefix + "_CONFIG")
	}
	if explicit != "" {
		v.SetConfigFile(explicit)
		if err := v.ReadInConfig(); err != nil {
			return "", fmt.Errorf("read config %s: %w", explicit, err)
		}
		return v.ConfigFileUsed(), nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", nil
	}
	v.AddConfigPath(filepath.Join(dir, configName))
	v.SetConfigName(configName)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return "", nil
		}
		return "", fmt.Errorf("read config: %w", err)
	}
	return v.ConfigFileUsed(), nil
}

// Validate reports the first setting that cannot be used.
func Validate(cfg Config) error {
	if !strings.HasPrefix(cfg.App.StartPath, "/") {
		return fmt.Errorf("start path must begin with / (got %q)", cfg.App.StartPath)
	}
	if _, err := route.ParseFallback(cfg.App.Fallback); err != nil {
		return fmt.Errorf("fallback: %w", err)
	}
	if _, err := logging.ParseLevel(cfg.Logging.Level); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	if strings.TrimSpace(cfg.Logging.FilePath) == "" {
		return errors.New("log file path must not be empty")
	}
	return nil
}
