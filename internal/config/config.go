package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/ygrebnov/tracing"
)

// DemoConfig captures runtime settings for the tracerdemo binary.
type DemoConfig struct {
	ServiceName   string   `mapstructure:"service_name"`
	Scopes        []string `mapstructure:"scopes"`
	SpansPerScope int      `mapstructure:"spans_per_scope"`
	PrettyPrint   bool     `mapstructure:"pretty_print"`
	LogLevel      string   `mapstructure:"log_level"`
}

// Flag names understood by Load when a flag set is given.
const (
	FlagServiceName = "service"
	FlagScopes      = "scope"
	FlagSpans       = "spans"
	FlagPretty      = "pretty"
	FlagLogLevel    = "log-level"
)

var flagKeys = map[string]string{
	FlagServiceName: "service_name",
	FlagScopes:      "scopes",
	FlagSpans:       "spans_per_scope",
	FlagPretty:      "pretty_print",
	FlagLogLevel:    "log_level",
}

// Load loads demo configuration from defaults, an optional config file, env
// vars (TRACERDEMO_ prefix) and flags, in increasing precedence. An empty
// configFile looks for ./configs/config.yaml and tolerates its absence.
func Load(configFile string, flags *pflag.FlagSet) (DemoConfig, error) {
	v := viper.New()
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("./configs")
	}
	v.SetEnvPrefix("TRACERDEMO")
	v.AutomaticEnv()

	v.SetDefault("service_name", "tracerdemo")
	v.SetDefault("scopes", []string{"github.com/ygrebnov/tracing/demo"})
	v.SetDefault("spans_per_scope", 3)
	v.SetDefault("pretty_print", false)
	v.SetDefault("log_level", "info")

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return DemoConfig{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return DemoConfig{}, fmt.Errorf("load config: %w", err)
		}
	}

	var cfg DemoConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return DemoConfig{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return DemoConfig{}, err
	}
	return cfg, nil
}

// Validate checks values viper cannot check on its own.
func (c DemoConfig) Validate() error {
	if c.SpansPerScope < 0 {
		return fmt.Errorf("spans_per_scope must not be negative, got %d", c.SpansPerScope)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

// Scope is an instrumentation scope given as "name" or "name@version".
type Scope struct {
	Name      string
	Version   string
	Versioned bool
}

// ParseScope splits s at the last "@". "svc@" yields an empty but present
// version.
func ParseScope(s string) Scope {
	s = strings.TrimSpace(s)
	i := strings.LastIndex(s, "@")
	if i < 0 {
		return Scope{Name: s}
	}
	return Scope{Name: s[:i], Version: s[i+1:], Versioned: true}
}

// Options returns the tracer options selecting this scope.
func (s Scope) Options() []tracing.TracerOption {
	if !s.Versioned {
		return nil
	}
	return []tracing.TracerOption{tracing.WithVersion(s.Version)}
}
