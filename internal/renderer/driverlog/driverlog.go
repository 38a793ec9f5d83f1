// Package driverlog picks the graphics driver's diagnostic out of a stream of trace lines.
package driverlog

import "strings"

// Severity of a trace line, mapped from the backend's own levels.
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

// Diagnostics remembers the last warning-or-worse line since Reset. A shader compile or link
// failure line is kept over any later generic line, since backends follow it with a fallback notice.
type Diagnostics struct {
	last string
}

// Reset forgets the recorded line.
func (d *Diagnostics) Reset() {
	d.last = ""
}

// Observe records text if it is severe enough and not less specific than what is held.
func (d *Diagnostics) Observe(sev Severity, text string) {
	if sev < Warning {
		return
	}
	if isShaderFailure(d.last) && !isShaderFailure(text) {
		return
	}
	d.last = strings.TrimSpace(text)
}

// Last returns the recorded line, or "" if none.
func (d *Diagnostics) Last() string {
	return d.last
}

func isShaderFailure(text string) bool {
	return strings.Contains(text, "Compile error") || strings.Contains(text, "Link error")
}
