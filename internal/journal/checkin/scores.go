package checkin

import (
	"math"
	"strings"
)

// Scores is the 0-100 readiness triple derived from a check-in.
// Overall is deliberately not the mean of Physical and Mental: the
// three scores normalize different component sets over different
// denominators (25 / 35 / 60).
type Scores struct {
	Physical int `json:"physical"`
	Mental   int `json:"mental"`
	Overall  int `json:"overall"`
}

const (
	physicalDenominator = 25
	mentalDenominator   = 35
	overallDenominator  = 60
)

// PhysicalScore sums the 5 physical components (soreness inverted)
// and normalizes to 0-100.
func (c CheckIn) PhysicalScore() int {
	sum := c.PhysicalStrength +
		c.Recovered +
		c.Energy +
		(5 - c.Soreness) +
		c.Readiness
	return normalize(sum, physicalDenominator)
}

// MentalScore sums the 7 mental components and normalizes to 0-100.
func (c CheckIn) MentalScore() int {
	sum := c.MentalStrength +
		c.Confidence +
		c.Sleep +
		c.Stress +
		c.BodyConnection +
		c.Focus +
		c.Excitement
	return normalize(sum, mentalDenominator)
}

// OverallScore sums all 12 components (soreness inverted) and
// normalizes over 60.
func (c CheckIn) OverallScore() int {
	sum := c.PhysicalStrength +
		c.Recovered +
		c.Energy +
		(5 - c.Soreness) +
		c.Readiness +
		c.MentalStrength +
		c.Confidence +
		c.Sleep +
		c.Stress +
		c.BodyConnection +
		c.Focus +
		c.Excitement
	return normalize(sum, overallDenominator)
}

func (c CheckIn) Scores() Scores {
	return Scores{
		Physical: c.PhysicalScore(),
		Mental:   c.MentalScore(),
		Overall:  c.OverallScore(),
	}
}

// Completed reports whether the check-in counts as submitted.
// The goal text is the sole completion gate, ratings have no
// required minimum.
func (c CheckIn) Completed() bool {
	return strings.TrimSpace(c.Goal) != ""
}

// out-of-range slider values are clamped here, never rejected
func normalize(sum, denominator int) int {
	ratio := float64(sum) / float64(denominator)
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	return int(math.Round(ratio * 100))
}
