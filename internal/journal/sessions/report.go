package sessions

import "time"

// Report is a post-session reflection
type Report struct {
	ID          int       `json:"id"`
	Performance int       `json:"performance"` // 1-5
	Enjoyment   int       `json:"enjoyment"`   // 1-5
	Fatigue     int       `json:"fatigue"`     // 1-5
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
