// Package logging builds the structured loggers used by the randx command
// and server.
//
// Level and Format are flag values. Level names are the values go-kit
// writes under the "level" key, so --log.level=warn keeps exactly the
// records tagged level=warn and above. Format names are the go-kit logger
// constructors they select. Both are matched case-insensitively.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/pflag"
)

var (
	_ pflag.Value = (*Level)(nil)
	_ pflag.Value = (*Format)(nil)
)

// Format selects the go-kit logger encoding.
type Format uint

const (
	// FmtLogfmt selects log.NewLogfmtLogger.
	FmtLogfmt Format = iota
	// FmtJSON selects log.NewJSONLogger.
	FmtJSON
)

var formatNames = []string{
	FmtLogfmt: "logfmt",
	FmtJSON:   "json",
}

func (f *Format) String() string {
	return formatNames[*f]
}

func (f *Format) Set(s string) error {
	i, err := lookup(formatNames, s)
	if err != nil {
		return fmt.Errorf("logging: invalid log format: %w", err)
	}
	*f = Format(i)
	return nil
}

func (f *Format) Type() string {
	return "[" + strings.Join(formatNames, ",") + "]"
}

// Level is the lowest level a logger lets through.
type Level uint

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var (
	levelNames = []string{
		LevelDebug: level.DebugValue().String(),
		LevelInfo:  level.InfoValue().String(),
		LevelWarn:  level.WarnValue().String(),
		LevelError: level.ErrorValue().String(),
	}
	levelFilters = []level.Option{
		LevelDebug: level.AllowDebug(),
		LevelInfo:  level.AllowInfo(),
		LevelWarn:  level.AllowWarn(),
		LevelError: level.AllowError(),
	}
)

func (l *Level) String() string {
	return levelNames[*l]
}

func (l *Level) Set(s string) error {
	i, err := lookup(levelNames, s)
	if err != nil {
		return fmt.Errorf("logging: invalid log level: %w", err)
	}
	*l = Level(i)
	return nil
}

func (l *Level) Type() string {
	return "[" + strings.Join(levelNames, ",") + "]"
}

func lookup(names []string, s string) (int, error) {
	for i, name := range names {
		if strings.EqualFold(name, s) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("'%s' is not one of %s", s, strings.Join(names, ", "))
}

// New returns a logger writing to w in the given format, dropping records
// below lvl. Records carry a UTC timestamp under "ts". A nil w discards
// everything.
func New(w io.Writer, format Format, lvl Level) log.Logger {
	if w == nil {
		return log.NewNopLogger()
	}

	var logger log.Logger
	w = log.NewSyncWriter(w)
	switch format {
	case FmtJSON:
		logger = log.NewJSONLogger(w)
	default:
		logger = log.NewLogfmtLogger(w)
	}

	filter := level.AllowError()
	if int(lvl) < len(levelFilters) {
		filter = levelFilters[lvl]
	}
	logger = level.NewFilter(logger, filter)
	return log.With(logger, "ts", log.DefaultTimestampUTC)
}
