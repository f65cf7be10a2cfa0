// Package logging builds the charmbracelet loggers used across statgames.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

// Output formats accepted by Options.Format.
const (
	FormatText   = "text"
	FormatJSON   = "json"
	FormatLogfmt = "logfmt"
)

// Options configures a logger.
type Options struct {
	Level           string
	Format          string
	NoColor         bool
	ReportTimestamp bool
	Prefix          string
}

// New returns a logger writing to w. Empty Level and Format default to
// "info" and "text".
func New(w io.Writer, opts Options) (*log.Logger, error) {
	level := log.InfoLevel
	if opts.Level != "" {
		l, err := log.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
		level = l
	}

	formatter, err := ParseFormat(opts.Format)
	if err != nil {
		return nil, err
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       formatter,
		ReportTimestamp: opts.ReportTimestamp,
		Prefix:          opts.Prefix,
	})
	if opts.NoColor {
		logger.SetColorProfile(termenv.Ascii)
	}
	logger.SetStyles(styles())
	return logger, nil
}

// ParseFormat maps a format name to a charmbracelet formatter.
func ParseFormat(format string) (log.Formatter, error) {
	switch strings.ToLower(format) {
	case "", FormatText:
		return log.TextFormatter, nil
	case FormatJSON:
		return log.JSONFormatter, nil
	case FormatLogfmt:
		return log.LogfmtFormatter, nil
	default:
		return log.TextFormatter, fmt.Errorf("unknown log format %q", format)
	}
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

// OrDiscard returns logger, or a discarding logger when it is nil.
func OrDiscard(logger *log.Logger) *log.Logger {
	if logger == nil {
		return Discard()
	}
	return logger
}

// styles highlights the equilibrium keys in text output.
func styles() *log.Styles {
	s := log.DefaultStyles()
	key := lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	for _, k := range []string{"p", "payoff", "kind"} {
		s.Keys[k] = key
	}
	s.Values["kind"] = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	return s
}
