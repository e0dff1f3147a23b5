package pomodoro

import "github.com/mmcdole/pomo/internal/domain"

// Counters holds the round and goal tallies shared by every widget in the
// process. Readers use Round and Goal; only a Machine mutates it.
type Counters struct {
	round int
	goal  int
}

// NewCounters returns counters at zero
func NewCounters() *Counters {
	return &Counters{}
}

func (c *Counters) Round() int { return c.round }
func (c *Counters) Goal() int  { return c.goal }

// Saturated reports whether both counters sit at their maxima
func (c *Counters) Saturated() bool {
	return c.round >= domain.MaxRound && c.goal >= domain.MaxGoal
}

// advance applies one cycle completion. Returns false when the counters
// were already saturated and nothing changed.
func (c *Counters) advance() bool {
	switch {
	case c.round < domain.MaxRound:
		c.round++
	case c.goal < domain.MaxGoal:
		c.goal++
		c.round = 0
	default:
		return false
	}
	return true
}

func (c *Counters) zero() {
	c.round = 0
	c.goal = 0
}
