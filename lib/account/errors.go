// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package account

import (
	"errors"
	"fmt"
	"syscall"
)

// Status is a Win32 error code. It is defined independently of the
// platform so that status handling is the same on every GOOS; a Status
// is itself an error, which is how non-native Platform implementations
// report failures.
type Status uint32

const (
	StatusSuccess             Status = 0
	StatusAccessDenied        Status = 5
	StatusInvalidParameter    Status = 87
	StatusCallNotImplemented  Status = 120
	StatusInsufficientBuffer  Status = 122
	StatusInvalidFlags        Status = 1004
	StatusNoneMapped          Status = 1332
	StatusNoTrustSAMAccount   Status = 1787
	StatusTrustedRelationship Status = 1789
)

var statusNames = map[Status]string{
	StatusSuccess:             "ERROR_SUCCESS",
	StatusAccessDenied:        "ERROR_ACCESS_DENIED",
	StatusInvalidParameter:    "ERROR_INVALID_PARAMETER",
	StatusCallNotImplemented:  "ERROR_CALL_NOT_IMPLEMENTED",
	StatusInsufficientBuffer:  "ERROR_INSUFFICIENT_BUFFER",
	StatusInvalidFlags:        "ERROR_INVALID_FLAGS",
	StatusNoneMapped:          "ERROR_NONE_MAPPED",
	StatusNoTrustSAMAccount:   "ERROR_NO_TRUST_SAM_ACCOUNT",
	StatusTrustedRelationship: "ERROR_TRUSTED_RELATIONSHIP_FAILURE",
}

// String returns the symbolic name and numeric value, e.g.
// "ERROR_NONE_MAPPED (1332)". Unnamed codes print as "status 1234".
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return fmt.Sprintf("%s (%d)", name, uint32(s))
	}
	return fmt.Sprintf("status %d", uint32(s))
}

func (s Status) Error() string { return s.String() }

// needsResize reports whether a failed probe asks for larger buffers.
// Only these two codes carry that meaning.
func (s Status) needsResize() bool {
	return s == StatusInsufficientBuffer || s == StatusInvalidFlags
}

// statusFromError extracts the platform status from err. Native
// failures arrive as syscall.Errno; fakes and the non-Windows platform
// return a Status directly. Anything else is reported as
// ERROR_INVALID_PARAMETER, which is what the native layer uses for
// input it cannot marshal (for example a name containing NUL).
func statusFromError(err error) Status {
	if err == nil {
		return StatusSuccess
	}
	var status Status
	if errors.As(err, &status) {
		return status
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return Status(errno)
	}
	return StatusInvalidParameter
}

// PlatformError is a native call failure other than "not found".
type PlatformError struct {
	// Op names the failing step, e.g. "probe account name".
	Op string

	// Status is the platform status code. StatusSuccess means the call
	// reported success where failure was required (the sizing probe).
	Status Status

	// Err is the underlying error, or nil when the resolver produced
	// the failure itself.
	Err error
}

func (e *PlatformError) Error() string {
	if e.Status == StatusSuccess {
		return fmt.Sprintf("%s: call unexpectedly succeeded", e.Op)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Status)
}

func (e *PlatformError) Unwrap() error { return e.Err }

// TranslationError reports that a SID returned by a successful lookup
// could not be validated or translated back to an account name, as
// happens for orphaned SIDs.
type TranslationError struct {
	// SID is the string form of the identifier, as produced by the
	// platform.
	SID string
	Err error
}

func (e *TranslationError) Error() string {
	return fmt.Sprintf("translating %s to an account name: %v", e.SID, e.Err)
}

func (e *TranslationError) Unwrap() error { return e.Err }

// StatusOf returns the platform status carried by err. The boolean is
// false when err holds no platform status: nil, or a TranslationError
// whose cause was not a native failure.
func StatusOf(err error) (Status, bool) {
	var platformError *PlatformError
	if errors.As(err, &platformError) {
		return platformError.Status, true
	}
	var translationError *TranslationError
	if errors.As(err, &translationError) {
		var errno syscall.Errno
		if errors.As(translationError.Err, &errno) {
			return Status(errno), true
		}
		var status Status
		if errors.As(translationError.Err, &status) {
			return status, true
		}
		return 0, false
	}
	return 0, false
}

// IsNotImplemented reports whether err came from a platform without a
// native account lookup facility.
func IsNotImplemented(err error) bool {
	status, ok := StatusOf(err)
	return ok && status == StatusCallNotImplemented
}
