package executor

import "time"

// pendingExecution tracks one in-flight execution between submit and
// the terminal poll response. It is owned by the Execute call that
// created it and never outlives it.
type pendingExecution struct {
	kernelID string
	location string
	deadline time.Time // zero means wait indefinitely
	interval time.Duration
	timeout  time.Duration
}

func (p *pendingExecution) expired(now time.Time) bool {
	return !p.deadline.IsZero() && !now.Before(p.deadline)
}
