// ABOUTME: Error taxonomy shared by matchers: discovery, delegation, decoding
// ABOUTME: DelegationError carries exit status and stderr from the child process

package filter

import (
	"errors"
	"fmt"
)

var (
	// ErrDiscovery reports that a matcher's external executable could not be found.
	ErrDiscovery = errors.New("executable not found")

	// ErrDelegation is matched by every *DelegationError.
	ErrDelegation = errors.New("delegation failed")

	// ErrMissingWord is returned when a decoded candidate has no "word" field.
	ErrMissingWord = errors.New("candidate has no word field")

	// ErrUnknownMatcher is returned by Registry lookups that miss.
	ErrUnknownMatcher = errors.New("unknown matcher")
)

// DelegationError describes a failed call to an external filter process.
type DelegationError struct {
	Op       string // "start", "write", "read", "decode", "wait", ...
	ExitCode int    // -1 when the process did not exit normally
	Stderr   string
	Err      error
}

func (e *DelegationError) Error() string {
	msg := fmt.Sprintf("delegation %s", e.Op)
	if e.ExitCode > 0 {
		msg += fmt.Sprintf(" (exit %d)", e.ExitCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

// Unwrap exposes the underlying I/O, encoding or exit error.
func (e *DelegationError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrDelegation) true for every DelegationError.
func (e *DelegationError) Is(target error) bool {
	return target == ErrDelegation
}
