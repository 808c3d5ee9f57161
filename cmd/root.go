// Package cmd provides the root command and CLI setup for bugtally.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"bugtally.dev/pkg/bugtally/internal/controller"
	"bugtally.dev/pkg/bugtally/internal/domain"
	m "bugtally.dev/pkg/bugtally/internal/model"
)

// newCounter builds the Counter used by commands. Tests swap it for a mock.
var newCounter = func(maxTraceSteps int64) domain.Counter {
	return domain.NewCounter(maxTraceSteps)
}

var (
	initialFlag    int64
	iterationsFlag int64
	fixedFlag      int64
	introducedFlag int64
	formatFlag     string
	logFileFlag    string
	verboseFlag    bool
)

const rootLongDescription = `Bugtally counts the pending bugs left after a number of fix steps.

Each fix step resolves --fixed bugs and introduces --introduced new ones,
starting from --initial pending bugs. With no flags it answers the classic
puzzle: one bug, fifteen fixes, three new bugs per fix.

Parameters can also come from bugtally.yaml or BUGTALLY_* environment
variables (e.g. BUGTALLY_RECURRENCE_ITERATIONS=20).`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "bugtally",
		Short:        "Count pending bugs after repeated fix steps",
		Long:         rootLongDescription,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			params, ui, err := prepare(cmd)
			if err != nil {
				return err
			}

			// Counting ignores the trace limit.
			count, err := newCounter(0).Count(params)
			if err != nil {
				return fmt.Errorf("count pending bugs: %w", err)
			}

			return ui.DisplayCount(cmd.Context(), params, count)
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	defaults := m.DefaultParams()

	cmd.PersistentFlags().Int64Var(&initialFlag, initialFlagName, defaults.InitialBugs, "pending bugs before the first fix step")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(initialFlagName), initialConfigKey)

	cmd.PersistentFlags().Int64VarP(&iterationsFlag, iterationsFlagName, "n", defaults.Iterations, "number of fix steps (must be non-negative)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(iterationsFlagName), iterationsConfigKey)

	cmd.PersistentFlags().Int64Var(&fixedFlag, fixedFlagName, defaults.FixedPerStep, "bugs fixed per step")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(fixedFlagName), fixedConfigKey)

	cmd.PersistentFlags().Int64Var(&introducedFlag, introducedFlagName, defaults.IntroducedPerStep, "bugs introduced per step")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(introducedFlagName), introducedConfigKey)

	cmd.PersistentFlags().StringVarP(&formatFlag, formatFlagName, "f", defaultFormat, "output format: text, table or yaml")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(formatFlagName), formatConfigKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, defaultLogFilename, "write logs to this file (rotated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", defaultLogVerbose, "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// prepare validates the output format and parameters before any counting.
func prepare(cmd *cobra.Command) (m.Params, controller.UI, error) {
	ui, err := controller.NewUI(cmd, viper.GetString(formatConfigKey))
	if err != nil {
		return m.Params{}, nil, err
	}

	params, err := paramsFromConfig()
	if err != nil {
		return m.Params{}, nil, err
	}

	if err := domain.Validate(params); err != nil {
		return m.Params{}, nil, err
	}

	return params, ui, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
