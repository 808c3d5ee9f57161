package controller

import (
	"bytes"
	"context"
	"strings"
	"testing"

	m "bugtally.dev/pkg/bugtally/internal/model"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func newTestUI(t *testing.T, format Format) (*SimpleUI, *bytes.Buffer) {
	t.Helper()

	out := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(out)

	return NewSimpleUI(cmd, format), out
}

func defaultSteps() []m.Step {
	return []m.Step{
		{Index: 1, Before: 1, AfterFix: 0, AfterIntro: 3},
		{Index: 2, Before: 3, AfterFix: 2, AfterIntro: 5},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    Format
		wantErr bool
	}{
		{"text", "text", FormatText, false},
		{"table upper", "TABLE", FormatTable, false},
		{"yaml padded", " yaml ", FormatYAML, false},
		{"json", "json", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.value)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownFormat)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewUI(t *testing.T) {
	ui, err := NewUI(&cobra.Command{}, "table")
	require.NoError(t, err)
	assert.NotNil(t, ui)

	_, err = NewUI(&cobra.Command{}, "xml")
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestSimpleUI_DisplayCount_Text(t *testing.T) {
	ui, out := newTestUI(t, FormatText)

	err := ui.DisplayCount(context.Background(), m.DefaultParams(), 31)
	require.NoError(t, err)
	assert.Equal(t, "31\n", out.String())
}

func TestSimpleUI_DisplayCount_Table(t *testing.T) {
	ui, out := newTestUI(t, FormatTable)

	err := ui.DisplayCount(context.Background(), m.DefaultParams(), 31)
	require.NoError(t, err)

	output := strings.ToUpper(out.String())
	assert.Contains(t, output, "PENDING")
	assert.Contains(t, output, "NET DELTA")
	assert.Contains(t, output, "31")
	assert.Contains(t, output, "15")
}

func TestSimpleUI_DisplayCount_YAML(t *testing.T) {
	ui, out := newTestUI(t, FormatYAML)

	err := ui.DisplayCount(context.Background(), m.DefaultParams(), 31)
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &doc))
	assert.Equal(t, 31, doc["pending_bugs"])
	assert.Equal(t, 2, doc["net_delta"])
	assert.Equal(t, "increasing", doc["trend"])

	params, ok := doc["params"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, 15, params["iterations"])
	assert.Equal(t, 3, params["introduced_per_step"])
}

func TestSimpleUI_DisplayTrace_Text(t *testing.T) {
	ui, out := newTestUI(t, FormatText)

	err := ui.DisplayTrace(context.Background(), m.DefaultParams(), defaultSteps())
	require.NoError(t, err)
	assert.Equal(t, "step 1: 1 -> 0 -> 3\nstep 2: 3 -> 2 -> 5\n5\n", out.String())
}

func TestSimpleUI_DisplayTrace_NoSteps(t *testing.T) {
	ui, out := newTestUI(t, FormatText)

	params := m.Params{InitialBugs: 7}
	err := ui.DisplayTrace(context.Background(), params, nil)
	require.NoError(t, err)
	assert.Equal(t, "7\n", out.String())
}

func TestSimpleUI_DisplayTrace_Table(t *testing.T) {
	ui, out := newTestUI(t, FormatTable)

	err := ui.DisplayTrace(context.Background(), m.DefaultParams(), defaultSteps())
	require.NoError(t, err)

	output := strings.ToUpper(out.String())
	assert.Contains(t, output, "AFTER INTRODUCE")
	assert.Contains(t, output, "TOTAL STEPS 2")
	assert.Contains(t, output, "INCREASING")
}

func TestSimpleUI_DisplayTrace_YAML(t *testing.T) {
	ui, out := newTestUI(t, FormatYAML)

	err := ui.DisplayTrace(context.Background(), m.DefaultParams(), defaultSteps())
	require.NoError(t, err)

	var doc struct {
		PendingBugs int64    `yaml:"pending_bugs"`
		Trend       string   `yaml:"trend"`
		Steps       []m.Step `yaml:"steps"`
	}
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &doc))
	assert.Equal(t, int64(5), doc.PendingBugs)
	assert.Equal(t, "increasing", doc.Trend)
	assert.Equal(t, defaultSteps(), doc.Steps)
}

func TestSimpleUI_CancelledContextPrintsNothing(t *testing.T) {
	ui, out := newTestUI(t, FormatText)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, ui.DisplayCount(ctx, m.DefaultParams(), 31), context.Canceled)
	require.ErrorIs(t, ui.DisplayTrace(ctx, m.DefaultParams(), defaultSteps()), context.Canceled)
	assert.Empty(t, out.String())
}

func TestSimpleUI_UnknownFormat(t *testing.T) {
	ui, out := newTestUI(t, Format("xml"))

	require.ErrorIs(t, ui.DisplayCount(context.Background(), m.DefaultParams(), 31), ErrUnknownFormat)
	require.ErrorIs(t, ui.DisplayTrace(context.Background(), m.DefaultParams(), nil), ErrUnknownFormat)
	assert.Empty(t, out.String())
}
