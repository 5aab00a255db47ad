package log

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/pflag"
)

// Config holds CLI flag values for diagnostic logging.
//
// Create instances with [NewConfig], register flags with
// [Config.RegisterFlags], and build a logger with [Config.NewLogger].
type Config struct {
	Level  string
	Format string
}

// NewConfig returns a [Config] whose defaults keep the filter silent in
// pipelines: only errors are logged, as text.
func NewConfig() *Config {
	return &Config{
		Level:  "error",
		Format: string(FormatText),
	}
}

// RegisterFlags adds logging flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.Level, "log-level", c.Level,
		"diagnostic log level, one of: error, warn, info, debug")
	flags.StringVar(&c.Format, "log-format", c.Format,
		"diagnostic log format, one of: text, json")
}

// NewLogger creates a [*slog.Logger] writing to w using the configured
// level and format strings.
func (c *Config) NewLogger(w io.Writer) (*slog.Logger, error) {
	level, err := ParseLevel(c.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, c.Level)
	}

	format, err := ParseFormat(c.Format)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, c.Format)
	}

	return slog.New(NewHandler(w, level, format)), nil
}
