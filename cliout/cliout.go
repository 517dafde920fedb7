// Copyright (c) The a0 Authors. All rights reserved.
// Licensed under the MIT License.

package cliout

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
)

// Format represents the output format.
type Format string

const (
	// FormatDefault is the default human-readable format.
	FormatDefault Format = "default"
	// FormatJSON is JSON format.
	FormatJSON Format = "json"
)

// ANSI color codes
const (
	Reset        = "\033[0m"
	Bold         = "\033[1m"
	Dim          = "\033[2m"
	BrightRed    = "\033[91m"
	BrightGreen  = "\033[92m"
	BrightYellow = "\033[93m"
	BrightBlue   = "\033[94m"
	Cyan         = "\033[36m"
)

// Unicode symbols
const (
	SymbolCheck   = "✓"
	SymbolCross   = "✗"
	SymbolWarning = "⚠"
	SymbolInfo    = "ℹ"
	SymbolArrow   = "→"
)

var (
	mu           sync.RWMutex
	globalFormat = FormatDefault
	out          io.Writer = os.Stdout
	messages     io.Writer = os.Stdout
	colorMode    = colorAuto
)

type colorSetting int

const (
	colorAuto colorSetting = iota
	colorOn
	colorOff
)

// SetOutput redirects both command results and messages to w.
func SetOutput(w io.Writer) {
	mu.Lock()
	out = w
	messages = w
	mu.Unlock()
}

// SetMessageOutput redirects progress, warning, and hint messages to w.
// Command results keep going to the writer set by SetOutput.
func SetMessageOutput(w io.Writer) {
	mu.Lock()
	messages = w
	mu.Unlock()
}

// Output returns the writer for command results.
func Output() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return out
}

// MessageOutput returns the writer for human-readable messages.
func MessageOutput() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return messages
}

// ForceColor enables color output regardless of terminal detection.
func ForceColor() {
	mu.Lock()
	colorMode = colorOn
	mu.Unlock()
}

// NoColor disables color output.
func NoColor() {
	mu.Lock()
	colorMode = colorOff
	mu.Unlock()
}

// useColor reports whether escapes should be written to the current output.
func useColor() bool {
	mu.RLock()
	defer mu.RUnlock()

	switch colorMode {
	case colorOn:
		return true
	case colorOff:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := messages.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// SetFormat sets the global output format.
func SetFormat(format string) error {
	mu.Lock()
	defer mu.Unlock()

	switch format {
	case "default", "":
		globalFormat = FormatDefault
	case "json":
		globalFormat = FormatJSON
	default:
		return fmt.Errorf("invalid output format: %s (valid options: default, json)", format)
	}
	return nil
}

// GetFormat returns the current output format.
func GetFormat() Format {
	mu.RLock()
	defer mu.RUnlock()
	return globalFormat
}

// IsJSON returns true if the output format is JSON.
func IsJSON() bool {
	return GetFormat() == FormatJSON
}

// PrintJSON writes data as indented JSON to the result writer.
func PrintJSON(data any) error {
	encoder := json.NewEncoder(Output())
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// Print outputs data in the configured format.
// For default format, uses the formatter function.
func Print(data any, formatter func()) error {
	if IsJSON() {
		return PrintJSON(data)
	}
	formatter()
	return nil
}

func paint(color, s string) string {
	if !useColor() {
		return s
	}
	return color + s + Reset
}

func writeLine(line string) {
	fmt.Fprintln(MessageOutput(), line)
}

// Header prints a bold header with a divider.
func Header(text string) {
	writeLine("")
	writeLine(paint(Bold, text))
	writeLine(strings.Repeat("=", len(text)))
}

// Success prints a success message with a green checkmark.
func Success(format string, args ...any) {
	writeLine(paint(BrightGreen, SymbolCheck) + " " + fmt.Sprintf(format, args...))
}

// Error prints an error message with a red cross.
func Error(format string, args ...any) {
	writeLine(paint(BrightRed, SymbolCross) + " " + fmt.Sprintf(format, args...))
}

// Warning prints a warning message with a yellow triangle.
func Warning(format string, args ...any) {
	writeLine(paint(BrightYellow, SymbolWarning) + "  " + fmt.Sprintf(format, args...))
}

// Info prints an info message with a blue info icon.
func Info(format string, args ...any) {
	writeLine(paint(BrightBlue, SymbolInfo) + "  " + fmt.Sprintf(format, args...))
}

// Hint prints a dimmed hint line. Multiple hints are joined with bullets;
// empty hints are dropped.
func Hint(hints ...string) {
	var parts []string
	for _, h := range hints {
		if h != "" {
			parts = append(parts, h)
		}
	}
	if len(parts) == 0 {
		return
	}
	writeLine(paint(Dim, strings.Join(parts, " • ")))
}

// Item prints an indented item with an arrow.
func Item(format string, args ...any) {
	writeLine("   " + paint(Cyan, SymbolArrow) + " " + fmt.Sprintf(format, args...))
}

// Label prints a label and value pair.
func Label(label, value string) {
	writeLine(fmt.Sprintf("   %s %s", paint(Dim, fmt.Sprintf("%-18s", label+":")), value))
}

// YesNo renders a boolean as "yes" or "no".
func YesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
