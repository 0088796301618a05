// Package counter defines cumulative counters for served variates.
package counter

// Counter is a cumulative metric.
type Counter interface {
	// Value returns the total added so far.
	Value() int64
	// RatePerSec returns the increase per second measured over the last
	// completed period.
	RatePerSec() int64

	Add(n int64)
}
