package config

import (
	"fmt"
	"strings"
)

// ParseError reports a malformed configuration document.
type ParseError struct {
	// Path is the source file, if any.
	Path string

	// Err is the underlying decode error.
	Err error
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: parse error: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("parse error: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// UnknownKeyError reports an unrecognized section or option. The
// loader rejects unknown keys rather than warn-and-ignore, so typos
// never silently run with defaults.
type UnknownKeyError struct {
	// Key is the offending option name or dotted path.
	Key string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("%s: unknown configuration option", e.Key)
}

// ValidationError reports an option whose value lies outside its
// declared domain.
type ValidationError struct {
	// Key is the dotted path of the offending option.
	Key string

	// Value is the rejected value.
	Value interface{}

	// Allowed is the enumeration of permitted values, when the
	// option is enumerated.
	Allowed []string

	// Message describes the constraint for non-enumerated options.
	Message string
}

func (e *ValidationError) Error() string {
	if len(e.Allowed) > 0 {
		return fmt.Sprintf("%s: invalid value %v, must be one of: %s",
			e.Key, e.Value, strings.Join(e.Allowed, "|"))
	}
	if e.Value == nil {
		return fmt.Sprintf("%s: %s", e.Key, e.Message)
	}
	return fmt.Sprintf("%s: %s (got %v)", e.Key, e.Message, e.Value)
}

// ConsistencyError reports a stated value that contradicts the value
// derivable from other options. The stated value is never silently
// overwritten.
type ConsistencyError struct {
	// Key is the dotted path of the derived option.
	Key string

	// Stated is the value present in the document.
	Stated interface{}

	// Computed is the value derived from the rest of the config.
	Computed interface{}

	// Detail names the derivation.
	Detail string
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("%s: stated value %v contradicts derived value %v (%s)",
		e.Key, e.Stated, e.Computed, e.Detail)
}

// Result collects validation errors for a single RunConfig.
type Result struct {
	Errors []error
}

// IsValid returns true if no errors were recorded.
func (r *Result) IsValid() bool { return len(r.Errors) == 0 }

// Error returns all recorded errors joined by newlines.
func (r *Result) Error() string {
	msgs := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "\n")
}

// Unwrap exposes the individual errors to errors.Is/errors.As.
func (r *Result) Unwrap() []error { return r.Errors }

// Err returns the result as an error, or nil when valid.
func (r *Result) Err() error {
	if r.IsValid() {
		return nil
	}
	return r
}

// addEnum records a ValidationError for an enumerated option.
func (r *Result) addEnum(key string, value interface{}, allowed []string) {
	r.Errors = append(r.Errors, &ValidationError{Key: key, Value: value, Allowed: allowed})
}

// addRange records a ValidationError for a range or shape constraint.
func (r *Result) addRange(key string, value interface{}, message string) {
	r.Errors = append(r.Errors, &ValidationError{Key: key, Value: value, Message: message})
}
