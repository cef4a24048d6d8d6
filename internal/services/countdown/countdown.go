// Package countdown times an issued question. It only observes: the caller
// decides what expiry means and resolves the question itself.
package countdown

import (
	"context"
	"errors"
	"time"
)

// DefaultInterval is how often a watch checks whether the question was resolved
const DefaultInterval = time.Second

// Outcome is how a watch ended
type Outcome string

const (
	// OutcomeResolved means the question was answered or skipped in time
	OutcomeResolved Outcome = "resolved"

	// OutcomeExpired means the time limit elapsed with the question still open
	OutcomeExpired Outcome = "expired"

	// OutcomeStopped means the context was cancelled, e.g. on shutdown
	OutcomeStopped Outcome = "stopped"
)

// WatchInput contains parameters for watching a question
type WatchInput struct {
	// Limit is the time the player has
	Limit time.Duration

	// Interval is the polling period. Defaults to DefaultInterval.
	Interval time.Duration

	// Resolved reports whether the question was settled elsewhere
	Resolved func() bool
}

// WatchOutput reports how the watch ended
type WatchOutput struct {
	Outcome Outcome
}

// Expired reports whether the limit elapsed
func (o *WatchOutput) Expired() bool {
	return o.Outcome == OutcomeExpired
}

// Watch blocks until the question is resolved, the limit elapses or ctx is done.
// Resolution is checked once more at the deadline so a question settled in the
// last interval is never reported as expired.
func Watch(ctx context.Context, input *WatchInput) (*WatchOutput, error) {
	if input == nil || input.Resolved == nil {
		return nil, errors.New("input and resolved check cannot be nil")
	}
	if input.Limit <= 0 {
		return nil, errors.New("limit must be positive")
	}

	interval := input.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	deadline := time.NewTimer(input.Limit)
	defer deadline.Stop()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return &WatchOutput{Outcome: OutcomeStopped}, nil
		case <-ticker.C:
			if input.Resolved() {
				return &WatchOutput{Outcome: OutcomeResolved}, nil
			}
		case <-deadline.C:
			if input.Resolved() {
				return &WatchOutput{Outcome: OutcomeResolved}, nil
			}
			return &WatchOutput{Outcome: OutcomeExpired}, nil
		}
	}
}
