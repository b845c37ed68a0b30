// Package logging builds the zerolog loggers used by rtreectl.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"

	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config selects where and how log lines are written.
type Config struct {
	Level  string // trace, debug, info, warn or error
	Format string // console or json
	Color  string // auto, always or never; console format only

	// File, when set, receives the log instead of the console writer and is
	// rotated once it reaches MaxSizeMB.
	File       string
	MaxSizeMB  int
	MaxBackups int
}

// Default returns the configuration used when no flags are given.
func Default() Config {
	return Config{
		Level:      "info",
		Format:     FormatConsole,
		Color:      ColorAuto,
		MaxSizeMB:  10,
		MaxBackups: 3,
	}
}

// New builds a logger from cfg writing to out (or to cfg.File). The returned
// closer releases the log file and must be called when done.
func New(cfg Config, out io.Writer) (zerolog.Logger, io.Closer, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("log level %q: %w", cfg.Level, err)
	}

	var closer io.Closer = nopCloser{}
	if cfg.File != "" {
		lj := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
		}
		out, closer = lj, lj
	}

	var w io.Writer
	switch strings.ToLower(cfg.Format) {
	case FormatJSON:
		w = out
	case FormatConsole, "":
		w = ConsoleWriter(out, ColorEnabled(cfg.Color, out))
	default:
		_ = closer.Close()
		return zerolog.Nop(), nil, fmt.Errorf("log format %q: want %s or %s", cfg.Format, FormatConsole, FormatJSON)
	}

	logger := zerolog.New(w).Level(level).With().Timestamp().Logger()
	return logger, closer, nil
}

// ColorEnabled resolves a Color setting against the writer that will be
// used. "auto" enables colour only for terminals.
func ColorEnabled(mode string, out io.Writer) bool {
	switch strings.ToLower(mode) {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ConsoleWriter builds a zerolog.ConsoleWriter. With colour, levels are drawn
// as badges using lipgloss.
func ConsoleWriter(out io.Writer, color bool) zerolog.ConsoleWriter {
	cw := zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    !color,
		TimeFormat: "15:04:05",
	}
	if !color {
		return cw
	}
	cw.FormatLevel = func(i any) string {
		lvl := strings.ToLower(fmt.Sprint(i))
		if len(lvl) > 3 {
			lvl = lvl[:3]
		}
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color(levelColor(lvl))).
			Padding(0, 1).
			Render(strings.ToUpper(lvl))
	}
	cw.FormatFieldName = func(i any) string {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlue40)).Render(fmt.Sprint(i)) + "="
	}
	return cw
}

const (
	ColorTeal40   = "#3ddbd9"
	ColorBlue60   = "#4589ff"
	ColorBlue40   = "#78a9ff"
	ColorRed60    = "#da1e28"
	ColorOrange40 = "#ff832b"
	ColorGray60   = "#8d8d8d"
)

func levelColor(lvl string) string {
	switch lvl {
	case "deb", "tra":
		return ColorTeal40
	case "inf":
		return ColorBlue60
	case "war":
		return ColorOrange40
	case "err", "fat", "pan":
		return ColorRed60
	default:
		return ColorGray60
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
