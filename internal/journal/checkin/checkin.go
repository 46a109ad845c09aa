package checkin

import "time"

// CheckIn is one pre-training readiness check-in. All ratings are
// subjective 1-5 slider values; soreness is the odd one out
// (1 = none, 5 = extreme) and gets inverted when scoring.
type CheckIn struct {
	ID int `json:"id"`

	// physical
	PhysicalStrength int `json:"physicalStrength"`
	Recovered        int `json:"recovered"`
	Energy           int `json:"energy"`
	Soreness         int `json:"soreness"`
	Readiness        int `json:"readiness"`

	// mental
	MentalStrength int `json:"mentalStrength"`
	Confidence     int `json:"confidence"`
	Sleep          int `json:"sleep"`
	Stress         int `json:"stress"`
	BodyConnection int `json:"bodyConnection"`
	Focus          int `json:"focus"`
	Excitement     int `json:"excitement"`

	Goal     string `json:"goal"`
	Concerns string `json:"concerns,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}
