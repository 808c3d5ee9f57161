package controller

import (
	"bytes"
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	m "bugtally.dev/pkg/bugtally/internal/model"
)

// SimpleUI implements UI by writing to a cobra Command's output.
type SimpleUI struct {
	cmd    *cobra.Command
	format Format
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command, format Format) *SimpleUI {
	return &SimpleUI{cmd: cmd, format: format}
}

type countDocument struct {
	Params      m.Params `yaml:"params"`
	NetDelta    int64    `yaml:"net_delta"`
	Trend       m.Trend  `yaml:"trend"`
	PendingBugs int64    `yaml:"pending_bugs"`
}

type traceDocument struct {
	countDocument `yaml:",inline"`
	Steps         []m.Step `yaml:"steps"`
}

// DisplayCount prints the final pending count.
func (s *SimpleUI) DisplayCount(ctx context.Context, params m.Params, count int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	switch s.format {
	case FormatText:
		s.printf("%d\n", count)
	case FormatTable:
		s.printf("%s", renderCountTable(params, count))
	case FormatYAML:
		return s.writeYAML(newCountDocument(params, count))
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, s.format)
	}

	return nil
}

// DisplayTrace prints every fix step followed by the final count.
func (s *SimpleUI) DisplayTrace(ctx context.Context, params m.Params, steps []m.Step) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	final := params.InitialBugs
	if len(steps) > 0 {
		final = steps[len(steps)-1].AfterIntro
	}

	switch s.format {
	case FormatText:
		for _, step := range steps {
			s.printf("step %d: %d -> %d -> %d\n", step.Index, step.Before, step.AfterFix, step.AfterIntro)
		}

		s.printf("%d\n", final)
	case FormatTable:
		s.printf("%s", renderTraceTable(params, steps, final))
	case FormatYAML:
		if steps == nil {
			steps = []m.Step{}
		}

		return s.writeYAML(traceDocument{
			countDocument: newCountDocument(params, final),
			Steps:         steps,
		})
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, s.format)
	}

	return nil
}

func newCountDocument(params m.Params, count int64) countDocument {
	return countDocument{
		Params:      params,
		NetDelta:    params.NetDelta(),
		Trend:       params.Trend(),
		PendingBugs: count,
	}
}

func renderCountTable(params m.Params, count int64) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Initial", "Iterations", "Fixed", "Introduced", "Net Delta", "Pending"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.Append([]string{
		fmt.Sprintf("%d", params.InitialBugs),
		fmt.Sprintf("%d", params.Iterations),
		fmt.Sprintf("%d", params.FixedPerStep),
		fmt.Sprintf("%d", params.IntroducedPerStep),
		fmt.Sprintf("%d", params.NetDelta()),
		fmt.Sprintf("%d", count),
	})
	table.Render()

	return tableBuffer.String()
}

func renderTraceTable(params m.Params, steps []m.Step, final int64) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Step", "Before", "After Fix", "After Introduce"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})

	for _, step := range steps {
		table.Append([]string{
			fmt.Sprintf("%d", step.Index),
			fmt.Sprintf("%d", step.Before),
			fmt.Sprintf("%d", step.AfterFix),
			fmt.Sprintf("%d", step.AfterIntro),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Steps %d", len(steps)),
		"",
		params.Trend().String(),
		fmt.Sprintf("%d", final),
	})

	table.Render()

	return tableBuffer.String()
}

func (s *SimpleUI) writeYAML(doc interface{}) error {
	encoder := yaml.NewEncoder(s.cmd.OutOrStdout())
	encoder.SetIndent(2)

	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	return encoder.Close()
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
