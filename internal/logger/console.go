// Package logger writes leveled diagnostics for a scan run.
//
// Diagnostics always go to stderr so that report data written to stdout or
// to a file is never interleaved with log lines.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

// Level orders log severities.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// DefaultLevel is used when no level is configured.
const DefaultLevel = LevelWarn

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// ParseLevel accepts debug, info, warn (or warning) and error in any case.
// An empty value yields DefaultLevel.
func ParseLevel(raw string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return DefaultLevel, nil
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return DefaultLevel, fmt.Errorf("invalid log level: %s (want debug|info|warn|error)", raw)
	}
}

// Console prefixes every line with an [HH:MM:SS] timestamp and the level tag.
// It is safe for concurrent use.
type Console struct {
	mu    sync.Mutex
	w     io.Writer
	level Level
	color bool
	now   func() time.Time
}

// NewConsole returns a logger writing to w. A nil writer discards everything.
// Colour is enabled when w is the process stdout or stderr and fatih/color
// has not detected a dumb terminal or NO_COLOR.
func NewConsole(w io.Writer, level Level) *Console {
	return &Console{w: w, level: level, color: isTerminal(w), now: time.Now}
}

// Discard drops every message.
func Discard() *Console { return NewConsole(nil, LevelError) }

func isTerminal(w io.Writer) bool {
	if w == nil {
		return false
	}
	if w == os.Stdout || w == os.Stderr {
		return !color.NoColor
	}
	return false
}

// SetColor forces level colouring on or off.
func (c *Console) SetColor(on bool) { c.color = on }

// Level reports the configured threshold.
func (c *Console) Level() Level { return c.level }

// Enabled reports whether messages at l are written.
func (c *Console) Enabled(l Level) bool { return c.w != nil && l >= c.level }

func (c *Console) Debugf(format string, args ...any) { c.logf(LevelDebug, format, args...) }
func (c *Console) Infof(format string, args ...any)  { c.logf(LevelInfo, format, args...) }
func (c *Console) Warnf(format string, args ...any)  { c.logf(LevelWarn, format, args...) }
func (c *Console) Errorf(format string, args ...any) { c.logf(LevelError, format, args...) }

func (c *Console) logf(l Level, format string, args ...any) {
	if !c.Enabled(l) {
		return
	}
	msg := strings.TrimRight(fmt.Sprintf(format, args...), "\n")
	tag := strings.ToUpper(l.String())
	if c.color {
		tag = levelColor(l).Sprint(tag)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.w, "[%s] [%s] %s\n", c.now().Format("15:04:05"), tag, msg)
}

func levelColor(l Level) *color.Color {
	switch l {
	case LevelDebug:
		return color.New(color.FgHiBlack)
	case LevelInfo:
		return color.New(color.FgBlue)
	case LevelWarn:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed, color.Bold)
	}
}
