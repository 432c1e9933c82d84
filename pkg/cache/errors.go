package cache

import (
	"context"
	"errors"
	"time"
)

// ErrNetwork marks backend connection failures: timeouts, refused
// connections, LOADING replies.
var ErrNetwork = errors.New("network error")

// TransientError marks a failure worth retrying.
type TransientError struct{ Err error }

// Transient wraps err as a TransientError. nil stays nil.
func Transient(err error) error {
	if err == nil {
		return nil
	}
	return &TransientError{Err: err}
}

func (e *TransientError) Error() string { return e.Err.Error() }
func (e *TransientError) Unwrap() error { return e.Err }

// IsTransient reports whether err, or anything it wraps, is transient.
func IsTransient(err error) bool {
	var te *TransientError
	return errors.As(err, &te)
}

// Backoff retries transient failures with doubling delays.
type Backoff struct {
	// Attempts is the total number of calls, including the first.
	Attempts int
	// Base is the delay before the second call.
	Base time.Duration
}

// DefaultBackoff is used for connection checks.
var DefaultBackoff = Backoff{Attempts: 3, Base: 250 * time.Millisecond}

// Do calls fn until it succeeds, returns a non-transient error, or the
// attempts run out. Cancelling ctx stops the wait between calls.
func (b Backoff) Do(ctx context.Context, fn func() error) error {
	attempts := max(b.Attempts, 1)
	delay := b.Base

	var err error
	for i := range attempts {
		if err = fn(); err == nil || !IsTransient(err) {
			return err
		}
		if i == attempts-1 {
			break
		}
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		delay *= 2
	}
	return err
}
