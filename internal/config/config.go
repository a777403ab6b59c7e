// SPDX-License-Identifier: MIT

// Package config loads kanjipath settings from defaults, an optional YAML
// file and KANJIPATH_* environment variables.
package config

import (
	"errors"
	"net"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/samber/oops"
	"github.com/spf13/viper"

	"github.com/katalvlaran/kanjipath/builder"
	"github.com/katalvlaran/kanjipath/dijkstra"
)

// Error codes attached to configuration failures.
const (
	CodeLoadReadFailure      = "config.load.read.failure"
	CodeValidateInvalidValue = "config.validate.invalid_value"
)

// EnvPrefix is the environment prefix; "weight.policy" maps to
// KANJIPATH_WEIGHT_POLICY.
const EnvPrefix = "KANJIPATH"

// Config is the top-level kanjipath configuration.
type Config struct {
	Data   DataConfig   `mapstructure:"data"`
	Weight WeightConfig `mapstructure:"weight"`
	Engine EngineConfig `mapstructure:"engine"`
	Log    LogConfig    `mapstructure:"log"`
	Server ServerConfig `mapstructure:"server"`
}

// DataConfig locates the character metrics and the decomposition file.
type DataConfig struct {
	Metrics       string `mapstructure:"metrics"`
	Decomposition string `mapstructure:"decomposition"`
	MetricsTable  string `mapstructure:"metrics_table"`
}

// WeightConfig selects the edge weight policy.
type WeightConfig struct {
	Policy       string             `mapstructure:"policy"`
	Coefficients CoefficientsConfig `mapstructure:"coefficients"`
	Scale        ScaleConfig        `mapstructure:"scale"`
}

// CoefficientsConfig holds the difficulty blend weights.
type CoefficientsConfig struct {
	Strokes   float64 `mapstructure:"strokes"`
	Grade     float64 `mapstructure:"grade"`
	JLPT      float64 `mapstructure:"jlpt"`
	Frequency float64 `mapstructure:"frequency"`
	Radical   float64 `mapstructure:"radical"`
}

// ScaleConfig holds the normalization ranges of the difficulty blend.
type ScaleConfig struct {
	MaxStrokes float64 `mapstructure:"max_strokes"`
	MaxGrade   float64 `mapstructure:"max_grade"`
	JLPTLevels float64 `mapstructure:"jlpt_levels"`
}

// EngineConfig tunes the shortest-path engine.
type EngineConfig struct {
	Seeding    string `mapstructure:"seeding"`
	StepBudget int    `mapstructure:"step_budget"`
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level     string `mapstructure:"level"`
	Format    string `mapstructure:"format"`
	AddSource bool   `mapstructure:"add_source"`
}

// ServerConfig controls the HTTP API.
type ServerConfig struct {
	Listen       string        `mapstructure:"listen"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// SetDefaults registers every key with its default value. Keys must be
// known to viper for environment overrides to reach Unmarshal.
func SetDefaults(v *viper.Viper) {
	def := builder.DefaultCoefficients()

	v.SetDefault("data.metrics", "")
	v.SetDefault("data.decomposition", "")
	v.SetDefault("data.metrics_table", "kanji_metrics")

	v.SetDefault("weight.policy", builder.PolicyQuartic)
	v.SetDefault("weight.coefficients.strokes", def.Strokes)
	v.SetDefault("weight.coefficients.grade", def.Grade)
	v.SetDefault("weight.coefficients.jlpt", def.JLPT)
	v.SetDefault("weight.coefficients.frequency", def.Frequency)
	v.SetDefault("weight.coefficients.radical", def.Radical)
	v.SetDefault("weight.scale.max_strokes", def.MaxStrokes)
	v.SetDefault("weight.scale.max_grade", def.MaxGrade)
	v.SetDefault("weight.scale.jlpt_levels", def.JLPTLevels)

	v.SetDefault("engine.seeding", dijkstra.SeedLazy.String())
	v.SetDefault("engine.step_budget", 0)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.add_source", false)

	v.SetDefault("server.listen", "127.0.0.1:8080")
	v.SetDefault("server.read_timeout", 5*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
}

// SetupEnv binds KANJIPATH_* variables.
func SetupEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load reads configuration from path (optional) with environment overrides.
func Load(path string) (*Config, error) {
	v := viper.New()
	SetDefaults(v)
	SetupEnv(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, oops.Code(CodeLoadReadFailure).Errorf("reading config %s: %w", path, err)
		}
	}

	return FromViper(v)
}

// FromViper decodes and validates an already prepared viper instance.
func FromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, oops.Code(CodeValidateInvalidValue).Errorf("unmarshalling config: %w", err)
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, oops.Code(CodeValidateInvalidValue).Errorf("validating config: %w", errors.Join(errs...))
	}

	return &cfg, nil
}

// Coefficients converts the weight section into builder coefficients.
func (c *Config) Coefficients() builder.Coefficients {
	w := c.Weight

	return builder.Coefficients{
		Strokes:    w.Coefficients.Strokes,
		Grade:      w.Coefficients.Grade,
		JLPT:       w.Coefficients.JLPT,
		Frequency:  w.Coefficients.Frequency,
		Radical:    w.Coefficients.Radical,
		MaxStrokes: w.Scale.MaxStrokes,
		MaxGrade:   w.Scale.MaxGrade,
		JLPTLevels: w.Scale.JLPTLevels,
	}
}

// Policy resolves the configured weight policy.
func (c *Config) Policy() (builder.WeightPolicy, error) {
	return builder.PolicyByName(c.Weight.Policy, c.Coefficients())
}

// EngineOptions translates the engine section into dijkstra options.
func (c *Config) EngineOptions() ([]dijkstra.Option, error) {
	seeding, err := dijkstra.ParseSeeding(c.Engine.Seeding)
	if err != nil {
		return nil, err
	}

	return []dijkstra.Option{
		dijkstra.WithSeeding(seeding),
		dijkstra.WithStepBudget(c.Engine.StepBudget),
	}, nil
}

// Validate checks the configuration for logical errors.
// It returns every problem found rather than stopping at the first one.
func (c *Config) Validate() []error {
	var errs []error

	errs = append(errs, c.validateData()...)
	errs = append(errs, c.validateWeight()...)
	errs = append(errs, c.validateEngine()...)
	errs = append(errs, c.validateLog()...)
	errs = append(errs, c.validateServer()...)

	return errs
}

func invalid(format string, args ...any) error {
	return oops.Code(CodeValidateInvalidValue).Errorf(format, args...)
}

func (c *Config) validateData() []error {
	var errs []error

	if c.Data.Metrics != "" {
		switch strings.ToLower(filepath.Ext(c.Data.Metrics)) {
		case ".csv", ".db", ".sqlite", ".sqlite3":
		default:
			errs = append(errs, invalid(
				"config: data.metrics must be a .csv or SQLite (.db, .sqlite) file, got %q", c.Data.Metrics))
		}
	}
	if c.Data.Decomposition != "" {
		switch strings.ToLower(filepath.Ext(c.Data.Decomposition)) {
		case ".json", ".yaml", ".yml":
		default:
			errs = append(errs, invalid(
				"config: data.decomposition must be a .json or .yaml file, got %q", c.Data.Decomposition))
		}
	}
	if c.Data.MetricsTable == "" {
		errs = append(errs, invalid("config: data.metrics_table must not be empty"))
	}

	return errs
}

func (c *Config) validateWeight() []error {
	var errs []error

	switch c.Weight.Policy {
	case builder.PolicyQuartic, "":
	case builder.PolicyDifficulty:
		if err := c.Coefficients().Validate(); err != nil {
			errs = append(errs, invalid("config: weight.coefficients: %w", err))
		}
	default:
		errs = append(errs, invalid(
			"config: weight.policy must be one of [%s, %s], got %q",
			builder.PolicyQuartic, builder.PolicyDifficulty, c.Weight.Policy))
	}

	return errs
}

func (c *Config) validateEngine() []error {
	var errs []error

	if _, err := dijkstra.ParseSeeding(c.Engine.Seeding); err != nil {
		errs = append(errs, invalid("config: engine.seeding must be one of [lazy, eager], got %q", c.Engine.Seeding))
	}
	if c.Engine.StepBudget < 0 {
		errs = append(errs, invalid("config: engine.step_budget must not be negative, got %d", c.Engine.StepBudget))
	}

	return errs
}

func (c *Config) validateLog() []error {
	var errs []error

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "warning": true, "error": true}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		errs = append(errs, invalid("config: log.level must be one of [debug, info, warn, error], got %q", c.Log.Level))
	}
	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[strings.ToLower(c.Log.Format)] {
		errs = append(errs, invalid("config: log.format must be one of [text, json], got %q", c.Log.Format))
	}

	return errs
}

func (c *Config) validateServer() []error {
	var errs []error

	if c.Server.Listen == "" {
		errs = append(errs, invalid("config: server.listen must not be empty"))
	} else {
		_, portStr, err := net.SplitHostPort(c.Server.Listen)
		if err != nil {
			errs = append(errs, invalid(
				"config: server.listen must be a valid host:port address, got %q: %w", c.Server.Listen, err))
		} else if port, err := strconv.Atoi(portStr); err != nil || port < 0 || port > 65535 {
			errs = append(errs, invalid(
				"config: server.listen port must be a number between 0 and 65535, got %q", portStr))
		}
	}
	if c.Server.ReadTimeout <= 0 {
		errs = append(errs, invalid("config: server.read_timeout must be positive, got %s", c.Server.ReadTimeout))
	}
	if c.Server.WriteTimeout <= 0 {
		errs = append(errs, invalid("config: server.write_timeout must be positive, got %s", c.Server.WriteTimeout))
	}

	return errs
}
