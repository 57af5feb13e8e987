package jointconfig

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
)

// Kind classifies a configuration failure. Every Kind is itself an error so
// callers can test for it with errors.Is.
type Kind string

// Error implements the error interface for Kind.
func (k Kind) Error() string {
	return string(k)
}

const (
	// ErrMissingField reports a required field absent from the document.
	ErrMissingField Kind = "missing field"
	// ErrModelNotFound reports a target model the world cannot resolve.
	ErrModelNotFound Kind = "model not found"
	// ErrJointNotFound reports a requested joint name matching no joint.
	ErrJointNotFound Kind = "joint not found"
	// ErrAmbiguousJointName reports a requested joint name matching more
	// than one joint, typically after nested model inclusion.
	ErrAmbiguousJointName Kind = "ambiguous joint name"
	// ErrSchemaMismatch reports a document that does not follow the plugin
	// format: unexpected elements or values of the wrong type.
	ErrSchemaMismatch Kind = "schema mismatch"
)

// ConfigError is returned for every validation failure. It identifies the
// plugin instance and the offending element.
type ConfigError struct {
	Kind    Kind
	Plugin  string
	Element string
	Detail  string
	Subject *hcl.Range
	// Err is the underlying cause, usually hcl.Diagnostics. Optional.
	Err error
}

// Error implements the error interface for ConfigError.
func (e *ConfigError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s]: %s", e.Plugin, e.Kind)
	if e.Element != "" {
		fmt.Fprintf(&b, " %q", e.Element)
	}
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	if e.Subject != nil && e.Subject.Filename != "" {
		fmt.Fprintf(&b, " (at %s)", e.Subject.String())
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

// Unwrap exposes both the Kind and the underlying cause to errors.Is/As.
func (e *ConfigError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func newError(kind Kind, plugin, element, detail string, subject hcl.Range) *ConfigError {
	e := &ConfigError{
		Kind:    kind,
		Plugin:  plugin,
		Element: element,
		Detail:  detail,
	}
	if subject.Filename != "" {
		e.Subject = subject.Ptr()
	}
	return e
}
