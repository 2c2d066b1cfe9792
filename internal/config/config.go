// Package config loads quantad settings from defaults, an optional YAML file,
// QUANTAD_* environment variables and command-line flags, in increasing order
// of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/born-ml/quantad/internal/logging"
	"github.com/born-ml/quantad/internal/pricing"
)

// EnvPrefix is prepended to every environment variable, e.g. QUANTAD_LOG_LEVEL.
const EnvPrefix = "QUANTAD"

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the fully resolved configuration.
type Config struct {
	Log      logging.Config
	Option   OptionConfig
	Solver   SolverConfig
	Parallel ParallelConfig

	// Portfolio lists the positions valued by "quantad portfolio". Spot, rate
	// and volatility come from Option; expiry does too unless set per position.
	Portfolio []PositionConfig
}

// OptionConfig describes the option priced by the CLI.
type OptionConfig struct {
	Kind       string
	Spot       float64
	Strike     float64
	Rate       float64
	Volatility float64
	Expiry     float64
}

// SolverConfig controls the implied volatility solver.
type SolverConfig struct {
	Tolerance     float64
	MaxIterations int
}

// ParallelConfig controls portfolio valuation.
type ParallelConfig struct {
	Workers int // 0 means one per CPU
}

// PositionConfig is one entry of the portfolio key.
type PositionConfig struct {
	Kind     string  `mapstructure:"kind"`
	Strike   float64 `mapstructure:"strike"`
	Expiry   float64 `mapstructure:"expiry"`
	Quantity float64 `mapstructure:"quantity"`
}

// SetDefaults registers a default for every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")

	v.SetDefault("option.kind", "call")
	v.SetDefault("option.spot", 100.0)
	v.SetDefault("option.strike", 100.0)
	v.SetDefault("option.rate", 0.05)
	v.SetDefault("option.volatility", 0.2)
	v.SetDefault("option.expiry", 1.0)

	v.SetDefault("solver.tolerance", 1e-10)
	v.SetDefault("solver.max_iterations", 100)

	v.SetDefault("parallel.workers", 0)
}

// New returns a viper instance with defaults and environment binding set up.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// BindFlags binds flags to keys, e.g. {"log-level": "log.level"}.
// Flags that do not exist in fs are an error.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet, keys map[string]string) error {
	for name, key := range keys {
		f := fs.Lookup(name)
		if f == nil {
			return fmt.Errorf("config: unknown flag %q", name)
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("config: bind %q: %w", name, err)
		}
	}
	return nil
}

// Load reads file into v (if non-empty) and decodes the result.
func Load(v *viper.Viper, file string) (Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", file, err)
		}
	}

	cfg := Config{
		Log: logging.Config{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			File:   v.GetString("log.file"),
		},
		Option: OptionConfig{
			Kind:       v.GetString("option.kind"),
			Spot:       v.GetFloat64("option.spot"),
			Strike:     v.GetFloat64("option.strike"),
			Rate:       v.GetFloat64("option.rate"),
			Volatility: v.GetFloat64("option.volatility"),
			Expiry:     v.GetFloat64("option.expiry"),
		},
		Solver: SolverConfig{
			Tolerance:     v.GetFloat64("solver.tolerance"),
			MaxIterations: v.GetInt("solver.max_iterations"),
		},
		Parallel: ParallelConfig{
			Workers: v.GetInt("parallel.workers"),
		},
	}
	if err := v.UnmarshalKey("portfolio", &cfg.Portfolio); err != nil {
		return Config{}, fmt.Errorf("config: portfolio: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalidConfig, err)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("%w: log.format must be text or json, got %q", ErrInvalidConfig, c.Log.Format)
	}
	if _, err := c.Option.Option(); err != nil {
		return fmt.Errorf("%w: option: %w", ErrInvalidConfig, err)
	}
	if !(c.Solver.Tolerance > 0) {
		return fmt.Errorf("%w: solver.tolerance must be positive, got %g", ErrInvalidConfig, c.Solver.Tolerance)
	}
	if c.Solver.MaxIterations <= 0 {
		return fmt.Errorf("%w: solver.max_iterations must be positive, got %d", ErrInvalidConfig, c.Solver.MaxIterations)
	}
	if c.Parallel.Workers < 0 {
		return fmt.Errorf("%w: parallel.workers must not be negative, got %d", ErrInvalidConfig, c.Parallel.Workers)
	}
	if _, err := c.Positions(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Positions resolves the portfolio entries against the market inputs in
// c.Option.
func (c Config) Positions() ([]pricing.Position, error) {
	out := make([]pricing.Position, 0, len(c.Portfolio))
	for i, p := range c.Portfolio {
		oc := c.Option
		oc.Kind, oc.Strike = p.Kind, p.Strike
		if p.Expiry != 0 {
			oc.Expiry = p.Expiry
		}
		o, err := oc.Option()
		if err != nil {
			return nil, fmt.Errorf("portfolio[%d]: %w", i, err)
		}
		out = append(out, pricing.Position{Option: o, Quantity: p.Quantity})
	}
	return out, nil
}

// Option converts the settings into a validated pricing.Option.
func (o OptionConfig) Option() (pricing.Option, error) {
	kind, err := pricing.ParseKind(o.Kind)
	if err != nil {
		return pricing.Option{}, err
	}
	opt := pricing.Option{
		Kind:       kind,
		Spot:       o.Spot,
		Strike:     o.Strike,
		Rate:       o.Rate,
		Volatility: o.Volatility,
		Expiry:     o.Expiry,
	}
	return opt, opt.Validate()
}
