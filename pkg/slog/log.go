// Package slog is a simple leveled logger with colorized level tags and a
// pair of convenience types for error checking.
//
// Every package using it opens with
//
//	var log, chk = slog.New(os.Stderr)
//
// and then guards fallible calls with `if ...; chk.D(err) { return }`. The
// Chk functions return true when the error is non-nil, printing it at the
// relevant level as a side effect, so error handling and error logging
// collapse into one expression.
package slog

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync/atomic"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/gookit/color"
)

const (
	Off = iota
	Fatal
	Error
	Warn
	Info
	Debug
	Trace
)

type (
	// Ln prints a list of values separated by spaces.
	Ln func(a ...interface{})
	// F prints like fmt.Printf with the log decorations around it.
	F func(format string, a ...interface{})
	// S prints a spew.Sdump of the given values.
	S func(a ...interface{})
	// C accepts a closure so the rendering cost is only paid when the level
	// is enabled.
	C func(closure func() string)
	// Chk prints the error and returns true if it is non-nil.
	Chk func(err error) bool
	// Err constructs an error via fmt.Errorf, prints it, and returns it.
	Err func(format string, a ...interface{}) error

	// LevelPrinter is the set of printers available at one log level.
	LevelPrinter struct {
		Ln
		F
		S
		C
		Chk
		Err
	}

	levelSpec struct {
		name      string
		colorizer func(a ...interface{}) string
	}
)

var (
	currentLevel atomic.Int32

	specs = []levelSpec{
		{"   ", color.Bit24(0, 0, 0, false).Sprint},
		{"FTL", color.Bit24(128, 0, 0, false).Sprint},
		{"ERR", color.Bit24(255, 0, 0, false).Sprint},
		{"WRN", color.Bit24(0, 255, 0, false).Sprint},
		{"INF", color.Bit24(255, 255, 0, false).Sprint},
		{"DBG", color.Bit24(0, 125, 255, false).Sprint},
		{"TRC", color.Bit24(125, 0, 255, false).Sprint},
	}
)

func init() {
	switch strings.ToUpper(os.Getenv("LOGLEVEL")) {
	case "OFF", "0", "FALSE":
		SetLogLevel(Off)
	case "FATAL":
		SetLogLevel(Fatal)
	case "ERROR":
		SetLogLevel(Error)
	case "WARN":
		SetLogLevel(Warn)
	case "DEBUG", "1", "TRUE", "ON":
		SetLogLevel(Debug)
	case "TRACE":
		SetLogLevel(Trace)
	default:
		SetLogLevel(Info)
	}
}

// SetLogLevel sets the process-wide maximum level that will be printed.
func SetLogLevel(l int) { currentLevel.Store(int32(l)) }

// GetLogLevel returns the current process-wide log level.
func GetLogLevel() (l int) { return int(currentLevel.Load()) }

// Log is a set of level printers, fields named by the first letter of their
// level.
type Log struct {
	F, E, W, I, D, T LevelPrinter
}

// Check carries just the Chk functions of a Log for the common guard idiom.
type Check struct {
	F, E, W, I, D, T Chk
}

// New returns a Log and Check pair writing to the given writer.
func New(w io.Writer) (l *Log, c *Check) {
	l = &Log{
		F: getPrinter(Fatal, w),
		E: getPrinter(Error, w),
		W: getPrinter(Warn, w),
		I: getPrinter(Info, w),
		D: getPrinter(Debug, w),
		T: getPrinter(Trace, w),
	}
	c = &Check{
		F: l.F.Chk,
		E: l.E.Chk,
		W: l.W.Chk,
		I: l.I.Chk,
		D: l.D.Chk,
		T: l.T.Chk,
	}
	return
}

func joinStrings(a ...interface{}) (s string) {
	for i := range a {
		s += fmt.Sprint(a[i])
		if i < len(a)-1 {
			s += " "
		}
	}
	return
}

func printIt(w io.Writer, level int32, text string) {
	fmt.Fprintf(w, "%s %s %s %s\n",
		timeStamp(),
		specs[level].colorizer(specs[level].name),
		text,
		getLoc(3),
	)
}

func getPrinter(level int32, w io.Writer) LevelPrinter {
	return LevelPrinter{
		Ln: func(a ...interface{}) {
			if int32(GetLogLevel()) < level {
				return
			}
			printIt(w, level, joinStrings(a...))
		},
		F: func(format string, a ...interface{}) {
			if int32(GetLogLevel()) < level {
				return
			}
			printIt(w, level, fmt.Sprintf(format, a...))
		},
		S: func(a ...interface{}) {
			if int32(GetLogLevel()) < level {
				return
			}
			printIt(w, level, spew.Sdump(a...))
		},
		C: func(closure func() string) {
			if int32(GetLogLevel()) < level {
				return
			}
			printIt(w, level, closure())
		},
		Chk: func(err error) bool {
			if err == nil {
				return false
			}
			if int32(GetLogLevel()) >= level {
				printIt(w, level, err.Error())
			}
			return true
		},
		Err: func(format string, a ...interface{}) error {
			if int32(GetLogLevel()) >= level {
				printIt(w, level, fmt.Sprintf(format, a...))
			}
			return fmt.Errorf(format, a...)
		},
	}
}

func timeStamp() string {
	return time.Now().Format("150405.000000")
}

func getLoc(skip int) (output string) {
	_, file, line, _ := runtime.Caller(skip)
	output = color.Bit24(0, 128, 255, false).Sprint(file, ":", line)
	return
}
