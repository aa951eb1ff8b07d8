package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fivetwenty-io/mangadex-client/internal/constants"
	"github.com/fivetwenty-io/mangadex-client/pkg/mangadex"
	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Common string constants used throughout the commands package.
const (
	Yes  = "yes"
	No   = "no"
	None = "none"
)

// outputFormat returns the configured output format.
func outputFormat() string {
	return viper.GetString("output")
}

// render writes v as JSON or YAML, or fills and renders a table for the table format.
func render(w io.Writer, format string, v interface{}, fill func(table *tablewriter.Table)) error {
	switch format {
	case constants.FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

		return encoder.Encode(v)
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(w)

		return encoder.Encode(v)
	case "", constants.FormatTable:
		table := tablewriter.NewWriter(w)
		fill(table)

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnsupportedFormat, format)
	}
}

// parseUUIDArg parses a positional argument as a resource id.
func parseUUIDArg(arg string) (uuid.UUID, error) {
	id, err := uuid.Parse(arg)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q", constants.ErrInvalidUUID, arg)
	}

	return id, nil
}

// parseUUIDArgs parses every argument as a resource id.
func parseUUIDArgs(args []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(args))

	for _, arg := range args {
		id, err := parseUUIDArg(arg)
		if err != nil {
			return nil, err
		}

		ids = append(ids, id)
	}

	return ids, nil
}

// parseReadingStatus validates a reading status name.
func parseReadingStatus(name string) (mangadex.ReadingStatus, error) {
	for _, status := range mangadex.ReadingStatuses() {
		if string(status) == name {
			return status, nil
		}
	}

	return "", fmt.Errorf("%w: %q", constants.ErrInvalidStatus, name)
}

func valueOrNA(value *string) string {
	if value == nil || *value == "" {
		return constants.NotAvailable
	}

	return *value
}

func yesNo(b bool) string {
	if b {
		return Yes
	}

	return No
}

func maskSecret(secret string) string {
	if secret == "" {
		return ""
	}

	return constants.MaskedSecret
}
