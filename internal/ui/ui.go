// Package ui provides terminal UI utilities for pigment.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/term"
)

// Colors for terminal output
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"

	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Blue   = "\033[34m"
	Cyan   = "\033[36m"
	Gray   = "\033[90m"
)

// Symbols for different message types
const (
	SymbolSuccess = "✔"
	SymbolError   = "✖"
	SymbolWarning = "⚠"
	SymbolInfo    = "ℹ"
)

// Output wraps an io.Writer with UI utilities.
type Output struct {
	w       io.Writer
	noColor bool
	quiet   bool
	verbose bool
}

// NewOutput creates a new Output.
func NewOutput(w io.Writer) *Output {
	return &Output{w: w}
}

// DefaultOutput creates an Output for stdout. Colors are disabled
// automatically when stdout is not a terminal.
func DefaultOutput() *Output {
	o := NewOutput(os.Stdout)
	o.noColor = !term.IsTerminal(int(os.Stdout.Fd()))
	return o
}

// SetNoColor disables colors.
func (o *Output) SetNoColor(noColor bool) {
	o.noColor = noColor
}

// SetQuiet enables quiet mode (only errors).
func (o *Output) SetQuiet(quiet bool) {
	o.quiet = quiet
}

// SetVerbose enables verbose mode.
func (o *Output) SetVerbose(verbose bool) {
	o.verbose = verbose
}

// Verbose reports whether verbose mode is enabled.
func (o *Output) Verbose() bool {
	return o.verbose
}

// color applies color if enabled.
func (o *Output) color(code, text string) string {
	if o.noColor {
		return text
	}
	return code + text + Reset
}

// Success prints a success message.
func (o *Output) Success(format string, args ...interface{}) {
	if o.quiet {
		return
	}
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(o.w, "%s %s\n", o.color(Green, SymbolSuccess), msg)
}

// Error prints an error message.
func (o *Output) Error(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(o.w, "%s %s\n", o.color(Red, SymbolError), msg)
}

// ErrorWithHint prints an error message with a hint.
func (o *Output) ErrorWithHint(err, hint string) {
	fmt.Fprintf(o.w, "%s %s\n", o.color(Red, SymbolError), err)
	fmt.Fprintf(o.w, "  %s %s\n", o.color(Gray, "Hint:"), hint)
}

// Warning prints a warning message.
func (o *Output) Warning(format string, args ...interface{}) {
	if o.quiet {
		return
	}
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(o.w, "%s %s\n", o.color(Yellow, SymbolWarning), msg)
}

// Info prints an info message.
func (o *Output) Info(format string, args ...interface{}) {
	if o.quiet {
		return
	}
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(o.w, "%s %s\n", o.color(Blue, SymbolInfo), msg)
}

// Print prints a plain message.
func (o *Output) Print(format string, args ...interface{}) {
	if o.quiet {
		return
	}
	fmt.Fprintf(o.w, format+"\n", args...)
}

// Debug prints a debug message (only in verbose mode).
func (o *Output) Debug(format string, args ...interface{}) {
	if !o.verbose {
		return
	}
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(o.w, "%s %s\n", o.color(Gray, "[DEBUG]"), msg)
}

// Field prints a labeled field.
func (o *Output) Field(label, value string) {
	if o.quiet {
		return
	}
	fmt.Fprintf(o.w, "  %s %s\n", o.color(Gray, label+":"), value)
}

// Swatch prints a color block with its hex code, population share, and a
// proportional bar.
func (o *Output) Swatch(r, g, b uint8, hex string, percentage float64) {
	if o.quiet {
		return
	}

	block := "  "
	if !o.noColor {
		block = fmt.Sprintf("\033[48;2;%d;%d;%dm  \033[0m", r, g, b)
	}

	bar := strings.Repeat("▇", barWidth(percentage))
	fmt.Fprintf(o.w, "%s %s %6.2f%% %s\n", block, hex, percentage, o.color(Gray, bar))
}

// barWidth maps a percentage in [0, 100] to a bar of at most 20 cells.
func barWidth(percentage float64) int {
	const maxWidth = 20

	if percentage <= 0 {
		return 0
	}
	w := int(percentage/100*maxWidth + 0.5)
	if w > maxWidth {
		return maxWidth
	}
	return w
}

// Table prints a simple table.
func (o *Output) Table(headers []string, rows [][]string) {
	if o.quiet {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	headerLine := ""
	for i, h := range headers {
		headerLine += fmt.Sprintf("%-*s  ", widths[i], h)
	}
	fmt.Fprintln(o.w, o.color(Bold, strings.TrimSpace(headerLine)))

	sepLine := ""
	for _, w := range widths {
		sepLine += strings.Repeat("-", w) + "  "
	}
	fmt.Fprintln(o.w, o.color(Gray, strings.TrimSpace(sepLine)))

	for _, row := range rows {
		rowLine := ""
		for i, cell := range row {
			if i < len(widths) {
				rowLine += fmt.Sprintf("%-*s  ", widths[i], cell)
			}
		}
		fmt.Fprintln(o.w, strings.TrimSpace(rowLine))
	}
}

// Spinner represents a CLI spinner.
type Spinner struct {
	out      *Output
	message  string
	frames   []string
	interval time.Duration
	stop     chan struct{}
	done     chan struct{}
}

// NewSpinner creates a new spinner.
func NewSpinner(out *Output, message string) *Spinner {
	return &Spinner{
		out:      out,
		message:  message,
		frames:   []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
		interval: 80 * time.Millisecond,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start starts the spinner.
func (s *Spinner) Start() {
	if s.out.quiet {
		return
	}

	go func() {
		defer close(s.done)
		i := 0
		for {
			select {
			case <-s.stop:
				// Clear the line
				fmt.Fprintf(s.out.w, "\r%s\r", strings.Repeat(" ", len(s.message)+4))
				return
			default:
				frame := s.frames[i%len(s.frames)]
				fmt.Fprintf(s.out.w, "\r%s %s", s.out.color(Cyan, frame), s.message)
				time.Sleep(s.interval)
				i++
			}
		}
	}()
}

// Stop stops the spinner.
func (s *Spinner) Stop() {
	if s.out.quiet {
		return
	}
	close(s.stop)
	<-s.done
}
