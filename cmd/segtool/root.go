package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "SEGTOOL"

// app carries the state shared by all subcommands.
type app struct {
	v      *viper.Viper
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: slog.New(slog.DiscardHandler)}

	var configFile string

	root := &cobra.Command{
		Use:   "segtool",
		Short: "Inspect window/hop pairs and run segmentation round trips",
		Long: `segtool certifies window/hop pairs for constant overlap-add (COLA),
lists the built-in window presets, and checks that segmenting and
reconstructing a signal is lossless on every registered numeric backend.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.initConfig(configFile); err != nil {
				return err
			}
			if err := bindFlags(cmd, a.v); err != nil {
				return err
			}
			a.initLogger(cmd)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (yaml)")
	root.PersistentFlags().BoolP("verbose", "v", false,
		"debug logging on stderr")
	root.PersistentFlags().StringP("output", "o", "table",
		"output format (table, json, yaml)")

	root.AddCommand(
		newPresetsCmd(a),
		newColaCmd(a),
		newRoundtripCmd(a),
		newParamsCmd(a),
	)

	return root
}

// initConfig reads the optional config file and enables SEGTOOL_* variables.
func (a *app) initConfig(configFile string) error {
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	a.v.AutomaticEnv()

	if configFile == "" {
		return nil
	}

	a.v.SetConfigFile(configFile)
	if err := a.v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", configFile, err)
	}
	return nil
}

func (a *app) initLogger(cmd *cobra.Command) {
	level := slog.LevelInfo
	if a.v.GetBool("verbose") {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	a.logger.Debug("config", "file", a.v.ConfigFileUsed(), "command", cmd.Name())
}

// bindFlags binds each cobra flag to its viper key and SEGTOOL_* variable.
// Values from the environment or config file are applied to flags the user
// did not set.
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var lastErr error

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))

		if err := v.BindEnv(f.Name, envPrefix+"_"+envVarSuffix); err != nil {
			lastErr = err
		}

		if !f.Changed && v.IsSet(f.Name) {
			val := v.Get(f.Name)
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
				lastErr = err
			}
		}

		if err := v.BindPFlag(f.Name, f); err != nil {
			lastErr = err
		}
	})

	return lastErr
}
