package diagnostic

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"text/template"

	"deep-cloner/internal/common"
)

// Info carries structured details about a diagnostic.
type Info map[string]any

// Diagnostic represents a single recoverable problem.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is the optional type tag identifying this kind of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Info holds structured details; nil when none were given.
	Info Info
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// Codes emitted by the cloner.
const (
	CodeNoMatch             = "no-match"
	CodeAmbiguousMatch      = "ambiguous-match"
	CodeConflictingDefaults = "conflicting-defaults"
	CodeFallbackMissing     = "fallback-missing"
	CodeBadPolicyValue      = "bad-policy-value"
	CodeDepthExceeded       = "depth-exceeded"
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// New creates a warning whose message is rendered from tmpl with info as
// the template data, e.g. "rule {{.ruleId}} not found". When the template
// cannot be rendered the raw text is kept.
func New(tmpl string, info Info) Diagnostic {
	return Diagnostic{
		Severity: DiagnosticWarning,
		Message:  render(tmpl, info),
		Info:     info,
	}
}

func render(tmpl string, info Info) string {
	if !strings.Contains(tmpl, "{{") {
		return tmpl
	}

	t, err := template.New("diagnostic").Option("missingkey=zero").Parse(tmpl)
	if err != nil {
		slog.Warn("diagnostic: cannot compile message template",
			slog.String("template", tmpl),
			slog.String("error", err.Error()),
		)
		return tmpl
	}

	var sb strings.Builder
	if err := t.Execute(&sb, map[string]any(info)); err != nil {
		slog.Warn("diagnostic: cannot render message template",
			slog.String("template", tmpl),
			slog.String("error", err.Error()),
		)
		return tmpl
	}

	return sb.String()
}

// WithCode returns a copy of d tagged with code.
func (d Diagnostic) WithCode(code string) Diagnostic {
	d.Code = code
	return d
}

// WithSeverity returns a copy of d with the given severity.
func (d Diagnostic) WithSeverity(s DiagnosticSeverity) Diagnostic {
	d.Severity = s
	return d
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	return d.Severity.String() + ": " + msg
}

// Diagnostics is an ordered list of diagnostics.
type Diagnostics []Diagnostic

// Add appends a diagnostic.
func (d *Diagnostics) Add(diag Diagnostic) {
	*d = append(*d, diag)
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, tmpl string, info Info) {
	d.Add(New(tmpl, info).WithCode(code).WithSeverity(DiagnosticError))
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, tmpl string, info Info) {
	d.Add(New(tmpl, info).WithCode(code))
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, tmpl string, info Info) {
	d.Add(New(tmpl, info).WithCode(code).WithSeverity(DiagnosticInfo))
}

// Merge appends all of other, keeping order.
func (d *Diagnostics) Merge(other Diagnostics) {
	*d = append(*d, other...)
}

// HasErrors returns true if there are any error diagnostics.
func (d Diagnostics) HasErrors() bool {
	for _, diag := range d {
		if diag.Severity == DiagnosticError {
			return true
		}
	}

	return false
}

// OfCode returns the diagnostics tagged with code, in order.
func (d Diagnostics) OfCode(code string) Diagnostics {
	var out Diagnostics
	for _, diag := range d {
		if diag.Code == code {
			out = append(out, diag)
		}
	}

	return out
}

// Error returns a combined error from all error diagnostics, or nil if there are none.
func (d Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	var parts []string
	for _, diag := range d {
		if diag.Severity == DiagnosticError {
			parts = append(parts, diag.String())
		}
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns one diagnostic per line.
func (d Diagnostics) String() string {
	parts := make([]string, 0, len(d))
	for _, diag := range d {
		parts = append(parts, diag.String())
	}

	return strings.Join(parts, "\n")
}
