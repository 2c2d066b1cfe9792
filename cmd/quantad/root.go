package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/born-ml/quantad/internal/config"
	"github.com/born-ml/quantad/internal/logging"
)

// globals is shared by every subcommand once the root has resolved
// configuration.
type globals struct {
	v          *viper.Viper
	configFile string

	cfg    config.Config
	logger *slog.Logger
	closer io.Closer

	out    io.Writer
	errOut io.Writer
}

// NewRootCommand builds the quantad command tree.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	g := &globals{v: config.New(), out: out, errOut: errOut}

	cmd := &cobra.Command{
		Use:           "quantad",
		Short:         "Option pricing and sensitivities with reverse-mode automatic differentiation",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, args []string) error {
			return g.complete(c.Flags())
		},
		PersistentPostRunE: func(c *cobra.Command, args []string) error {
			if g.closer != nil {
				return g.closer.Close()
			}
			return nil
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	fs := cmd.PersistentFlags()
	fs.StringVar(&g.configFile, "config", "", "path to a YAML configuration file")
	fs.String("log-level", "info", "log level: debug, info, warn or error")
	fs.String("log-format", "text", "log format: text or json")
	fs.String("log-file", "", "also append logs to this file")
	mustBind(g.v, fs, map[string]string{
		"log-level":  "log.level",
		"log-format": "log.format",
		"log-file":   "log.file",
	})

	cmd.AddCommand(
		newVersionCommand(g),
		newPriceCommand(g),
		newImpliedVolCommand(g),
		newDotCommand(g),
		newPortfolioCommand(g),
		newCatalogCommand(g),
	)
	return cmd
}

// optionFlags maps the per-command option flags to configuration keys.
var optionFlags = map[string]string{
	"kind":       "option.kind",
	"spot":       "option.spot",
	"strike":     "option.strike",
	"rate":       "option.rate",
	"volatility": "option.volatility",
	"expiry":     "option.expiry",
}

// addOptionFlags registers the option flags on cmd. They are bound to the
// configuration only when cmd runs, since several commands share the keys.
func addOptionFlags(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.String("kind", "call", "option kind: call or put")
	fs.Float64("spot", 100, "underlying price")
	fs.Float64("strike", 100, "strike price")
	fs.Float64("rate", 0.05, "continuously compounded risk-free rate")
	fs.Float64("volatility", 0.2, "annualised volatility")
	fs.Float64("expiry", 1, "time to expiry in years")
}

// complete binds the running command's option flags, loads configuration
// and builds the logger.
func (g *globals) complete(fs *pflag.FlagSet) error {
	if fs.Lookup("spot") != nil {
		if err := config.BindFlags(g.v, fs, optionFlags); err != nil {
			return err
		}
	}
	if fs.Lookup("workers") != nil {
		if err := config.BindFlags(g.v, fs, map[string]string{"workers": "parallel.workers"}); err != nil {
			return err
		}
	}
	cfg, err := config.Load(g.v, g.configFile)
	if err != nil {
		return err
	}
	logger, closer, err := logging.New(cfg.Log, g.errOut)
	if err != nil {
		return err
	}
	g.cfg, g.logger, g.closer = cfg, logger, closer
	logger.Debug("configuration loaded", "file", g.configFile)
	return nil
}

func mustBind(v *viper.Viper, fs *pflag.FlagSet, keys map[string]string) {
	cobra.CheckErr(config.BindFlags(v, fs, keys))
}
