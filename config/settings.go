package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/graphwalk/animate"
)

// Environment variables read by LoadSettings.
const (
	EnvDelay     = "GRAPHWALK_DELAY"
	EnvLogLevel  = "GRAPHWALK_LOG_LEVEL"
	EnvLogFormat = "GRAPHWALK_LOG_FORMAT"
)

// Settings are process-wide runtime knobs.
type Settings struct {
	Delay     time.Duration
	LogLevel  string // debug, info, warn, error
	LogFormat string // text, json
}

// DefaultSettings returns 700ms playback and info-level text logs.
func DefaultSettings() Settings {
	return Settings{
		Delay:     animate.DefaultDelay,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// LoadSettings loads the given .env files (".env" when none are named),
// skipping files that do not exist, then reads GRAPHWALK_* variables over
// the defaults. Variables already set in the process take precedence over
// file values.
func LoadSettings(envFiles ...string) (Settings, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Settings{}, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	s := DefaultSettings()
	if v := strings.TrimSpace(os.Getenv(EnvDelay)); v != "" {
		d, err := ParseDelay(v)
		if err != nil {
			return Settings{}, fmt.Errorf("%s: %w", EnvDelay, err)
		}
		s.Delay = d
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		s.LogLevel = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		s.LogFormat = strings.ToLower(v)
	}

	return s, nil
}

// ParseDelay accepts a Go duration ("350ms", "1s") or a bare integer taken
// as milliseconds.
func ParseDelay(v string) (time.Duration, error) {
	if ms, err := strconv.Atoi(v); err == nil {
		if ms < 0 {
			return 0, fmt.Errorf("negative delay %q", v)
		}
		return time.Duration(ms) * time.Millisecond, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid delay %q: %w", v, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("negative delay %q", v)
	}

	return d, nil
}

// NewLogger builds a slog.Logger writing to w at the given level and format.
// Unknown levels fall back to info; any format other than "json" is text.
func NewLogger(level, format string, w io.Writer) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: lvl}
	var h slog.Handler
	if strings.ToLower(format) == "json" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	return slog.New(h)
}

// Logger is NewLogger with s's level and format.
func (s Settings) Logger(w io.Writer) *slog.Logger {
	return NewLogger(s.LogLevel, s.LogFormat, w)
}
