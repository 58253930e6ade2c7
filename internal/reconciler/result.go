package reconciler

import "time"

// Result summarizes a Run.
type Result struct {
	RunID          string    `json:"run_id"`
	OrganizationID string    `json:"organization_id"`
	NetworkID      string    `json:"network_id"`
	Address        string    `json:"address"`
	Updated        []string  `json:"updated"`
	Declined       []string  `json:"declined"`
	StartedAt      time.Time `json:"started_at"`
	FinishedAt     time.Time `json:"finished_at"`
}

// Processed returns how many devices reached an outcome.
func (r *Result) Processed() int {
	return len(r.Updated) + len(r.Declined)
}

// Duration returns how long the run took.
func (r *Result) Duration() time.Duration {
	if r.FinishedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

func (r *Result) record(serial string, o Outcome) {
	switch o {
	case OutcomeUpdated:
		r.Updated = append(r.Updated, serial)
	case OutcomeDeclined:
		r.Declined = append(r.Declined, serial)
	}
}
