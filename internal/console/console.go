/*
Copyright © 2025 3 Leaps <info@3leaps.com>
*/

// Package console renders operator-facing output: colored status lines,
// aligned tables, boxes and confirmation prompts.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Printer writes colorized lines to an output and an error stream.
// It implements tools.Reporter.
type Printer struct {
	out io.Writer
	err io.Writer

	info    *color.Color
	warn    *color.Color
	fail    *color.Color
	ok      *color.Color
	explain *color.Color
	command *color.Color
	bold    *color.Color
}

// New creates a printer. With useColor false no escape codes are written;
// otherwise fatih/color's terminal and NO_COLOR detection applies.
func New(out, errOut io.Writer, useColor bool) *Printer {
	p := &Printer{
		out:     out,
		err:     errOut,
		info:    color.New(color.FgCyan),
		warn:    color.New(color.FgYellow),
		fail:    color.New(color.FgRed),
		ok:      color.New(color.FgGreen),
		explain: color.New(color.FgMagenta),
		command: color.New(color.FgCyan),
		bold:    color.New(color.Bold),
	}
	if !useColor {
		for _, c := range p.palette() {
			c.DisableColor()
		}
	}
	return p
}

// ForceColor enables escape codes even when the output is not a terminal.
func (p *Printer) ForceColor() {
	for _, c := range p.palette() {
		c.EnableColor()
	}
}

func (p *Printer) palette() []*color.Color {
	return []*color.Color{p.info, p.warn, p.fail, p.ok, p.explain, p.command, p.bold}
}

// Out returns the standard output stream.
func (p *Printer) Out() io.Writer { return p.out }

// Err returns the error stream.
func (p *Printer) Err() io.Writer { return p.err }

func (p *Printer) Info(format string, args ...interface{}) {
	_, _ = p.info.Fprintln(p.out, fmt.Sprintf(format, args...))
}

func (p *Printer) Warn(format string, args ...interface{}) {
	_, _ = p.warn.Fprintln(p.out, fmt.Sprintf(format, args...))
}

// Error writes to the error stream in red.
func (p *Printer) Error(format string, args ...interface{}) {
	_, _ = p.fail.Fprintln(p.err, fmt.Sprintf(format, args...))
}

func (p *Printer) Success(format string, args ...interface{}) {
	_, _ = p.ok.Fprintln(p.out, fmt.Sprintf(format, args...))
}

// Println writes an uncolored line.
func (p *Printer) Println(format string, args ...interface{}) {
	_, _ = fmt.Fprintln(p.out, fmt.Sprintf(format, args...))
}

// Explain prints a rationale line.
func (p *Printer) Explain(reason string) {
	_, _ = p.explain.Fprintln(p.out, "[explain] "+reason)
}

// Command prints the literal command about to run.
func (p *Printer) Command(rendered string) {
	_, _ = p.command.Fprintln(p.out, "$ "+rendered)
}

// Bold returns s in bold.
func (p *Printer) Bold(s string) string { return p.bold.Sprint(s) }

// Good returns s in green.
func (p *Printer) Good(s string) string { return p.ok.Sprint(s) }

// Bad returns s in red.
func (p *Printer) Bad(s string) string { return p.fail.Sprint(s) }

// Caution returns s in yellow.
func (p *Printer) Caution(s string) string { return p.warn.Sprint(s) }

// Box prints lines inside a frame.
func (p *Printer) Box(lines []string) {
	_, _ = fmt.Fprint(p.out, Box(lines))
}

// Confirm prints message and reads one line from in. Only "y" or "yes"
// (any case) confirm; anything else, including EOF, declines. A cancelled
// ctx declines without waiting for the line.
func Confirm(ctx context.Context, in io.Reader, out io.Writer, message string) bool {
	fmt.Fprint(out, message) //nolint:errcheck // CLI output errors are typically ignored

	answer := make(chan string, 1)
	go func() {
		line, _ := bufio.NewReader(in).ReadString('\n')
		answer <- line
	}()

	select {
	case <-ctx.Done():
		fmt.Fprintln(out) //nolint:errcheck
		return false
	case line := <-answer:
		line = strings.ToLower(strings.TrimSpace(line))
		return line == "y" || line == "yes"
	}
}
