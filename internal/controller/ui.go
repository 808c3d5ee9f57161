// Package controller renders pending-bug results to a command's output.
package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	m "bugtally.dev/pkg/bugtally/internal/model"
)

// Format selects how results are rendered.
type Format string

// Supported output formats.
const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatYAML  Format = "yaml"
)

// ErrUnknownFormat is returned for an output format that has no renderer.
var ErrUnknownFormat = errors.New("unknown output format")

// Formats lists every supported format in help order.
func Formats() []Format {
	return []Format{FormatText, FormatTable, FormatYAML}
}

// ParseFormat normalizes and validates a format name.
func ParseFormat(value string) (Format, error) {
	format := Format(strings.ToLower(strings.TrimSpace(value)))
	for _, known := range Formats() {
		if format == known {
			return format, nil
		}
	}

	return "", fmt.Errorf("%w %q", ErrUnknownFormat, value)
}

// UI defines how counts and traces are displayed.
type UI interface {
	DisplayCount(ctx context.Context, params m.Params, count int64) error
	DisplayTrace(ctx context.Context, params m.Params, steps []m.Step) error
}

// NewUI creates the UI for the given format writing to cmd's output.
func NewUI(cmd *cobra.Command, format string) (UI, error) {
	parsed, err := ParseFormat(format)
	if err != nil {
		return nil, err
	}

	return NewSimpleUI(cmd, parsed), nil
}
