package service

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrInvalid         = errors.New("invalid")
	ErrThrottled       = errors.New("rate limit exceeded")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrForbidden       = errors.New("forbidden")
	ErrUnsupportedFile = errors.New("unsupported file type")
	ErrFileTooLarge    = errors.New("file too large")
	ErrStorage         = errors.New("storage backend failed")
)

// FieldIssue describes one failing field of a submission.
type FieldIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError enumerates every failing field of a payload; it is
// never returned with an empty issue list.
type ValidationError struct {
	Issues []FieldIssue
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %d issue(s)", len(e.Issues))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalid
}

// ThrottledError reports a denied request along with how long the
// client has to wait before the window resets.
type ThrottledError struct {
	RetryAfter time.Duration
}

func (e *ThrottledError) Error() string {
	return "rate limit exceeded"
}

func (e *ThrottledError) Is(target error) bool {
	return target == ErrThrottled
}

// RetryAfterSeconds rounds the wait up to whole seconds, minimum 1, so
// clients never retry before the window actually resets.
func (e *ThrottledError) RetryAfterSeconds() int {
	secs := int((e.RetryAfter + time.Second - 1) / time.Second)
	if secs < 1 {
		secs = 1
	}
	return secs
}
