// Package logging builds the zerolog loggers used by the CLI and adapts them
// to the mangadex.Logger interface.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fivetwenty-io/mangadex-client/internal/constants"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// ParseLevel maps a level name to a zerolog level. Unknown names are info.
func ParseLevel(name string) zerolog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Setup configures a zerolog logger writing to out. Console output is
// colored only when out is a terminal.
func Setup(level, format string, out io.Writer) (zerolog.Logger, error) {
	switch format {
	case constants.LogFormatJSON:
		return zerolog.New(out).Level(ParseLevel(level)).With().Timestamp().Logger(), nil
	case "", constants.LogFormatConsole:
		output := zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
			NoColor:    !isTerminal(out),
		}

		return zerolog.New(output).Level(ParseLevel(level)).With().Timestamp().Logger(), nil
	default:
		return zerolog.Nop(), fmt.Errorf("%w: %s", constants.ErrUnsupportedLogType, format)
	}
}

func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Adapter implements mangadex.Logger on top of zerolog.
type Adapter struct {
	logger zerolog.Logger
}

// NewAdapter wraps logger.
func NewAdapter(logger zerolog.Logger) *Adapter {
	return &Adapter{logger: logger}
}

func (a *Adapter) Debug(msg string, fields map[string]interface{}) {
	a.logger.Debug().Fields(fields).Msg(msg)
}

func (a *Adapter) Info(msg string, fields map[string]interface{}) {
	a.logger.Info().Fields(fields).Msg(msg)
}

func (a *Adapter) Warn(msg string, fields map[string]interface{}) {
	a.logger.Warn().Fields(fields).Msg(msg)
}

func (a *Adapter) Error(msg string, fields map[string]interface{}) {
	a.logger.Error().Fields(fields).Msg(msg)
}
