// SPDX-License-Identifier: MIT
// Package: config
//
// config.go - keys, defaults and typed access.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/baranwa2/RandomWalkGCN/batch"
	"github.com/baranwa2/RandomWalkGCN/graphio"
)

// EnvPrefix prefixes environment overrides: model.p1 → SBMGEN_MODEL_P1.
const EnvPrefix = "SBMGEN"

// Configuration keys.
const (
	KeyP1             = "model.p1"
	KeyP2             = "model.p2"
	KeyQ              = "model.q"
	KeyTau            = "model.tau"
	KeyK1             = "model.k1"
	KeyK2             = "model.k2"
	KeyN              = "model.n"
	KeyBaseCount      = "batch.phases.base"
	KeyPerturbedCount = "batch.phases.perturbed"
	KeySeed           = "batch.seed"
	KeySeedMax        = "batch.seed_max"
	KeyWorkers        = "batch.workers"
	KeyManifest       = "batch.manifest"
	KeyOutputDir      = "output.dir"
	KeyOutputFormat   = "output.format"
	KeyLogLevel       = "logging.level"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// fractionEps bounds |k1+k2-1|.
const fractionEps = 1e-9

// Config wraps a viper instance holding every generator setting.
type Config struct {
	v *viper.Viper
}

// New returns a Config with defaults and environment overrides bound.
func New() *Config {
	v := viper.New()

	d := batch.DefaultTwoRegime()
	v.SetDefault(KeyP1, d.P1)
	v.SetDefault(KeyP2, d.P2)
	v.SetDefault(KeyQ, d.Q)
	v.SetDefault(KeyTau, d.Tau)
	v.SetDefault(KeyK1, d.K1)
	v.SetDefault(KeyK2, d.K2)
	v.SetDefault(KeyN, d.N)
	v.SetDefault(KeyBaseCount, d.BaseCount)
	v.SetDefault(KeyPerturbedCount, d.PerturbedCount)

	v.SetDefault(KeySeedMax, batch.DefaultSeedMax)
	v.SetDefault(KeyWorkers, 1)
	v.SetDefault(KeyManifest, "")

	v.SetDefault(KeyOutputDir, ".")
	v.SetDefault(KeyOutputFormat, graphio.FormatJSON)

	v.SetDefault(KeyLogLevel, "info")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Config{v: v}
}

// Load reads .env from the working directory (if present), then builds a
// Config and merges the config file at path when path is non-empty. Flags
// bound afterwards still take precedence over both.
func Load(path string) (*Config, error) {
	if err := LoadDotEnv(".env"); err != nil {
		return nil, err
	}
	c := New()
	if path != "" {
		if err := c.LoadFromFile(path); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// LoadDotEnv exports the variables in the .env file at path without
// overriding variables already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("LoadDotEnv(%s): %w", path, err)
	}
	return nil
}

// LoadFromFile merges the config file at path (format by extension).
func (c *Config) LoadFromFile(path string) error {
	c.v.SetConfigFile(path)
	if err := c.v.ReadInConfig(); err != nil {
		return fmt.Errorf("LoadFromFile(%s): %w", path, err)
	}
	return nil
}

// Viper exposes the underlying instance for flag binding.
func (c *Config) Viper() *viper.Viper { return c.v }

// Set overrides key.
func (c *Config) Set(key string, value interface{}) { c.v.Set(key, value) }

func (c *Config) P1() float64  { return c.v.GetFloat64(KeyP1) }
func (c *Config) P2() float64  { return c.v.GetFloat64(KeyP2) }
func (c *Config) Q() float64   { return c.v.GetFloat64(KeyQ) }
func (c *Config) Tau() float64 { return c.v.GetFloat64(KeyTau) }
func (c *Config) K1() float64  { return c.v.GetFloat64(KeyK1) }
func (c *Config) K2() float64  { return c.v.GetFloat64(KeyK2) }
func (c *Config) N() int       { return c.v.GetInt(KeyN) }

func (c *Config) BaseCount() int      { return c.v.GetInt(KeyBaseCount) }
func (c *Config) PerturbedCount() int { return c.v.GetInt(KeyPerturbedCount) }
func (c *Config) Seed() int64         { return c.v.GetInt64(KeySeed) }
func (c *Config) SeedSet() bool       { return c.v.IsSet(KeySeed) }
func (c *Config) SeedMax() int        { return c.v.GetInt(KeySeedMax) }
func (c *Config) Workers() int        { return c.v.GetInt(KeyWorkers) }
func (c *Config) Manifest() string    { return c.v.GetString(KeyManifest) }

func (c *Config) OutputDir() string    { return c.v.GetString(KeyOutputDir) }
func (c *Config) OutputFormat() string { return c.v.GetString(KeyOutputFormat) }
func (c *Config) LogLevel() string     { return c.v.GetString(KeyLogLevel) }

// TwoRegime returns the model and phase counts as a batch.TwoRegime.
func (c *Config) TwoRegime() batch.TwoRegime {
	return batch.TwoRegime{
		P1: c.P1(), P2: c.P2(), Q: c.Q(), Tau: c.Tau(),
		K1: c.K1(), K2: c.K2(), N: c.N(),
		BaseCount:      c.BaseCount(),
		PerturbedCount: c.PerturbedCount(),
	}
}

// Validate checks settings that would otherwise fail mid-run.
func (c *Config) Validate() error {
	var errs []error
	if math.Abs(c.K1()+c.K2()-1) > fractionEps {
		errs = append(errs, fmt.Errorf("%s+%s=%v, want 1", KeyK1, KeyK2, c.K1()+c.K2()))
	}
	if c.N() < 1 {
		errs = append(errs, fmt.Errorf("%s=%d, want ≥ 1", KeyN, c.N()))
	}
	if c.BaseCount() < 0 || c.PerturbedCount() < 0 {
		errs = append(errs, fmt.Errorf("phase counts %d/%d, want ≥ 0", c.BaseCount(), c.PerturbedCount()))
	}
	if c.Workers() < 1 {
		errs = append(errs, fmt.Errorf("%s=%d, want ≥ 1", KeyWorkers, c.Workers()))
	}
	if c.SeedMax() < 1 {
		errs = append(errs, fmt.Errorf("%s=%d, want ≥ 1", KeySeedMax, c.SeedMax()))
	}
	if _, err := graphio.CodecFor(c.OutputFormat()); err != nil {
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}
