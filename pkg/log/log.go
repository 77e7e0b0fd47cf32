package log

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

const (
	// ColorReset reset color.
	ColorReset = "\033[0m"
	// ColorGreen green.
	ColorGreen = "\033[32m"
	// ColorYellow yellow.
	ColorYellow = "\033[33m"
	// Check a green check tick.
	Check = ColorGreen + "✓" + ColorReset
)

var nonASCII = regexp.MustCompile("[[:^ascii:]]")

// YALI yet another logger interface ;).
type YALI interface {
	Printf(format string, a ...any)
	Checkf(format string, a ...any)
	Warnf(format string, a ...any)
}

// New logger.
func New(quiet, simple bool) YALI {
	return &log{
		quiet:  quiet,
		simple: simple,
	}
}

type log struct {
	quiet  bool
	simple bool
}

// Printf print a message.
func (l *log) Printf(format string, a ...any) {
	if !l.quiet {
		if l.simple {
			format = strings.ReplaceAll(format, "✓", "-")
			format = strings.ReplaceAll(format, ColorReset, "")
			format = strings.ReplaceAll(format, ColorGreen, "")
			format = strings.ReplaceAll(format, ColorYellow, "")
			format = nonASCII.ReplaceAllLiteralString(format, "")
			format = strings.ReplaceAll(format, "- \t", "\t")
		}
		_, _ = fmt.Printf(format, a...)
	}
}

// Checkf print a check message.
func (l *log) Checkf(format string, a ...any) {
	l.Printf(fmt.Sprintf("  %s %s", Check, format), a...)
}

// Warnf print a warning to stderr; warnings are never silenced by quiet mode.
func (l *log) Warnf(format string, a ...any) {
	if l.simple {
		_, _ = fmt.Fprintf(os.Stderr, "warning: "+format, a...)
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, ColorYellow+"warning: "+ColorReset+format, a...)
}
