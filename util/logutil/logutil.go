// Leveled logger on top of the standard log.Logger.
package logutil

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

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

func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level: %q", s)
}

//----------

type Logger struct {
	l     *log.Logger
	level Level
	tags  [4]string
}

// Level tags are colored only if w is a terminal.
func New(w io.Writer, level Level) *Logger {
	lg := &Logger{
		l:     log.New(w, "", log.LstdFlags),
		level: level,
	}
	names := [4]string{"DEBUG", "INFO", "WARN", "ERROR"}
	lg.tags = names
	if isTerminal(w) {
		attrs := [4]color.Attribute{color.Faint, color.FgCyan, color.FgYellow, color.FgRed}
		for i, a := range attrs {
			c := color.New(a)
			c.EnableColor()
			lg.tags[i] = c.Sprint(names[i])
		}
	}
	return lg
}

// Discards everything. Useful for tests.
func Discard() *Logger {
	return New(io.Discard, LevelError+1)
}

func (lg *Logger) Level() Level {
	return lg.level
}

func (lg *Logger) Enabled(level Level) bool {
	return level >= lg.level
}

func (lg *Logger) logf(level Level, f string, args ...interface{}) {
	if !lg.Enabled(level) {
		return
	}
	msg := fmt.Sprintf(f, args...)
	_ = lg.l.Output(3, lg.tags[level]+" "+msg)
}

func (lg *Logger) Debugf(f string, args ...interface{}) { lg.logf(LevelDebug, f, args...) }
func (lg *Logger) Infof(f string, args ...interface{})  { lg.logf(LevelInfo, f, args...) }
func (lg *Logger) Warnf(f string, args ...interface{})  { lg.logf(LevelWarn, f, args...) }
func (lg *Logger) Errorf(f string, args ...interface{}) { lg.logf(LevelError, f, args...) }

//----------

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
