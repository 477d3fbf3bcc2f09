// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"

	"pwgen-cli/internal/issue"

	"github.com/charmbracelet/log"
)

// ServiceError is an error that carries an issue catalog ID for the CLI layer.
// When the CLI layer receives a ServiceError, it renders the catalog entry on
// stderr after the error itself has been reported.
// Always create via newServiceError to enforce the Err-must-be-non-nil invariant.
type ServiceError struct {
	// Err is the underlying error (must not be nil).
	Err error
	// IssueID is the optional issue catalog ID for rendering help text.
	IssueID issue.Id
}

// newServiceError creates a ServiceError with a nil-Err panic guard.
func newServiceError(err error, issueID issue.Id) *ServiceError {
	if err == nil {
		panic("ServiceError: Err must not be nil")
	}
	return &ServiceError{Err: err, IssueID: issueID}
}

// Error implements the error interface.
func (e *ServiceError) Error() string { return e.Err.Error() }

// Unwrap returns the underlying error for errors.Is/As chains.
func (e *ServiceError) Unwrap() error { return e.Err }

// renderServiceError prints the issue help page for svcErr, if it has one.
func renderServiceError(stderr io.Writer, logger *log.Logger, svcErr *ServiceError, style string) {
	if svcErr == nil || svcErr.IssueID == 0 {
		return
	}

	catalogEntry := issue.Get(svcErr.IssueID)
	if catalogEntry == nil {
		return
	}

	rendered, err := catalogEntry.Render(style)
	if err != nil {
		logger.Warn("failed to render issue catalog entry", "issueID", svcErr.IssueID, "error", err)
		return
	}
	fmt.Fprint(stderr, rendered)
}
