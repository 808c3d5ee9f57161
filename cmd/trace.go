package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"bugtally.dev/pkg/bugtally/internal/domain"
)

var maxStepsFlag int64

// traceCmd represents the trace command.
var traceCmd = newTraceCmd()

func newTraceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Show the pending bugs after every fix step",
		Long: `Walk through the fix steps one by one, printing the pending bugs before
the step, after fixing and after the new bugs appear.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params, ui, err := prepare(cmd)
			if err != nil {
				return err
			}

			counter, err := traceCounterFromConfig()
			if err != nil {
				return err
			}

			steps, err := counter.Trace(params)
			if err != nil {
				return fmt.Errorf("trace pending bugs: %w", err)
			}

			return ui.DisplayTrace(cmd.Context(), params, steps)
		},
	}

	configureTraceFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(traceCmd)
}

func configureTraceFlags(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&maxStepsFlag, maxStepsFlagName, defaultMaxSteps, "refuse to trace more steps than this")
	bindFlagToConfig(cmd.Flags().Lookup(maxStepsFlagName), maxStepsConfigKey)
}

func traceCounterFromConfig() (domain.Counter, error) {
	maxSteps, err := integerSetting(maxStepsConfigKey)
	if err != nil {
		return nil, err
	}

	if maxSteps <= 0 {
		return nil, fmt.Errorf("%w: %s must be positive, got %d", domain.ErrInvalidArgument, maxStepsConfigKey, maxSteps)
	}

	return newCounter(maxSteps), nil
}
