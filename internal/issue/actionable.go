// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

type (
	// ActionableError is a user-facing error naming the failed operation and,
	// optionally, the resource involved and hints for recovering.
	//
	//	err := issue.NewErrorContext().
	//		WithOperation("load word list").
	//		WithSuggestion("Omit --wordlist to use the built-in list").
	//		Wrap(openErr).
	//		BuildError()
	ActionableError struct {
		// Operation is a verb phrase such as "load configuration".
		Operation string
		// Resource names the file or value involved (optional).
		Resource string
		// Suggestions are recovery hints shown under the error message.
		Suggestions []string
		// Cause is the underlying error (optional).
		Cause error
	}

	// ErrorContext collects the fields of an ActionableError.
	ErrorContext struct {
		operation   string
		resource    string
		suggestions []string
		cause       error
	}
)

// NewErrorContext returns an empty ErrorContext.
func NewErrorContext() *ErrorContext {
	return &ErrorContext{}
}

// Error renders "failed to <operation>[: <resource>][: <cause>]".
func (e *ActionableError) Error() string {
	parts := []string{"failed to " + e.Operation}
	if e.Resource != "" {
		parts = append(parts, e.Resource)
	}
	if e.Cause != nil {
		parts = append(parts, e.Cause.Error())
	}
	return strings.Join(parts, ": ")
}

// Unwrap returns the cause for errors.Is and errors.As.
func (e *ActionableError) Unwrap() error {
	return e.Cause
}

// Hints renders the text printed under the error message: one bullet per
// suggestion and, when verbose, the numbered chain of wrapped causes. It is
// empty when there is nothing to add.
func (e *ActionableError) Hints(verbose bool) string {
	var sb strings.Builder

	for _, s := range e.Suggestions {
		fmt.Fprintf(&sb, "  • %s\n", s)
	}

	if verbose && e.Cause != nil {
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("Error chain:\n")
		for i, err := 1, e.Cause; err != nil; i, err = i+1, errors.Unwrap(err) {
			fmt.Fprintf(&sb, "  %d. %s\n", i, err)
		}
	}

	return sb.String()
}

// WithOperation sets the operation being performed.
func (c *ErrorContext) WithOperation(op string) *ErrorContext {
	c.operation = op
	return c
}

// WithResource sets the resource involved.
func (c *ErrorContext) WithResource(res string) *ErrorContext {
	c.resource = res
	return c
}

// WithSuggestion appends a recovery hint.
func (c *ErrorContext) WithSuggestion(s string) *ErrorContext {
	c.suggestions = append(c.suggestions, s)
	return c
}

// Wrap sets the underlying cause.
func (c *ErrorContext) Wrap(err error) *ErrorContext {
	c.cause = err
	return c
}

// BuildError returns the collected ActionableError, or an untyped nil when no
// operation was set. The suggestions are copied, so the context can be reused.
func (c *ErrorContext) BuildError() error {
	if c.operation == "" {
		return nil
	}
	return &ActionableError{
		Operation:   c.operation,
		Resource:    c.resource,
		Suggestions: slices.Clone(c.suggestions),
		Cause:       c.cause,
	}
}
