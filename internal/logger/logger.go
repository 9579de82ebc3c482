// Package logger is a small leveled logger with text and JSON output,
// tunable through LOG_LEVEL and LOG_FORMAT.
package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func (l Level) String() string {
	switch l {
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warn:
		return "WARN"
	case Error:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func ParseLevel(str string) Level {
	switch strings.ToUpper(str) {
	case "DEBUG":
		return Debug
	case "WARN", "WARNING":
		return Warn
	case "ERROR":
		return Error
	default:
		return Info
	}
}

type entry struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Component string `json:"component,omitempty"`
	Message   string `json:"message"`
}

type Logger struct {
	mu        sync.Mutex
	level     Level
	json      bool
	out       io.Writer
	component string
}

func New(level Level, out io.Writer) *Logger {
	if out == nil {
		out = os.Stderr
	}
	return &Logger{
		level: level,
		out:   out,
	}
}

// FromEnv builds a logger for the given component honoring LOG_LEVEL and
// LOG_FORMAT (text or json).
func FromEnv(component string) *Logger {
	lg := New(ParseLevel(os.Getenv("LOG_LEVEL")), os.Stderr)
	lg.json = strings.EqualFold(os.Getenv("LOG_FORMAT"), "json")
	lg.component = component
	return lg
}

func (l *Logger) WithComponent(component string) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	return &Logger{
		level:     l.level,
		json:      l.json,
		out:       l.out,
		component: component,
	}
}

func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

func (l *Logger) Debugf(format string, args ...any) {
	l.write(Debug, format, args...)
}

func (l *Logger) Infof(format string, args ...any) {
	l.write(Info, format, args...)
}

func (l *Logger) Warnf(format string, args ...any) {
	l.write(Warn, format, args...)
}

func (l *Logger) Errorf(format string, args ...any) {
	l.write(Error, format, args...)
}

func (l *Logger) write(level Level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if level < l.level {
		return
	}
	var (
		now = time.Now().UTC().Format(time.RFC3339)
		msg = fmt.Sprintf(format, args...)
	)
	if l.json {
		e := entry{
			Timestamp: now,
			Level:     level.String(),
			Component: l.component,
			Message:   msg,
		}
		if dat, err := json.Marshal(e); err == nil {
			fmt.Fprintln(l.out, string(dat))
		}
		return
	}
	if l.component != "" {
		fmt.Fprintf(l.out, "%s %-5s [%s] %s\n", now, level, l.component, msg)
	} else {
		fmt.Fprintf(l.out, "%s %-5s %s\n", now, level, msg)
	}
}
