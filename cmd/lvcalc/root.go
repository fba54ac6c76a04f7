package main

import (
	"github.com/katalvlaran/lvcalc/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app is the state shared by every subcommand of one root command.
type app struct {
	v          *viper.Viper
	configPath string
	cfg        *config.Config
	log        *logrus.Entry
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.NewViper()}

	root := &cobra.Command{
		Use:           "lvcalc",
		Short:         "Equation and numeric solver",
		Long:          "lvcalc solves linear, quadratic, simultaneous and polynomial equations,\nintegrates and differentiates expressions, and evaluates shape formulas.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "Configuration file path (YAML)")
	pf.Int("precision", 0, "Decimals in answers (overrides config)")
	pf.String("log-level", "", "Log level: debug, info, warn, error (overrides config)")
	pf.Int64("seed", 0, "Seed for polynomial root search; 0 seeds from the clock")

	_ = a.v.BindPFlag("display.precision", pf.Lookup("precision"))
	_ = a.v.BindPFlag("log.level", pf.Lookup("log-level"))
	_ = a.v.BindPFlag("newton.seed", pf.Lookup("seed"))

	root.AddCommand(
		a.linearCmd(),
		a.quadraticCmd(),
		a.systemCmd(),
		a.polyCmd(),
		a.integrateCmd(),
		a.limitCmd(),
		a.deriveCmd(),
		a.geometryCmd(),
		a.replCmd(),
		a.configCmd(),
	)

	return root
}

// load resolves the configuration once flags are parsed.
func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.Load(a.v, a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logrus.NewEntry(config.NewLogger(cfg.Log, cmd.ErrOrStderr())).WithField("command", cmd.Name())
	a.log.WithField("config", a.v.ConfigFileUsed()).Debug("configuration loaded")

	return nil
}
