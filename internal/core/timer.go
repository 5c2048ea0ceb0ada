package core

import "time"

// DefaultTPS is the tick rate used when a non-positive rate is supplied.
const DefaultTPS = 6

// TickGate decides whether enough wall-clock time has passed for the next
// tick. It never queues missed ticks: at most one tick is granted per call.
type TickGate struct {
	interval time.Duration
	last     time.Time
}

// NewTickGate constructs a gate targeting tps ticks per second, counting the
// first interval from start.
func NewTickGate(tps int, start time.Time) *TickGate {
	g := &TickGate{last: start}
	g.SetTPS(tps)
	return g
}

// TickInterval converts a ticks-per-second rate into whole milliseconds per tick.
func TickInterval(tps int) time.Duration {
	if tps <= 0 {
		tps = DefaultTPS
	}
	return time.Duration(1000/tps) * time.Millisecond
}

// SetTPS changes the tick rate without touching the last tick time.
func (g *TickGate) SetTPS(tps int) {
	g.interval = TickInterval(tps)
}

// Interval returns the minimum duration between two ticks.
func (g *TickGate) Interval() time.Duration { return g.interval }

// Last returns the time of the most recent granted tick.
func (g *TickGate) Last() time.Time { return g.last }

// Ready reports whether a tick is due at now without consuming it.
func (g *TickGate) Ready(now time.Time) bool {
	return now.Sub(g.last) >= g.interval
}

// Tick grants a tick when one is due and records now as the last tick time.
func (g *TickGate) Tick(now time.Time) bool {
	if !g.Ready(now) {
		return false
	}
	g.last = now
	return true
}
