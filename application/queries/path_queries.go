package queries

import (
	"errors"
)

// LearningPathQuery asks for the ordered study sequence bridging a
// learner's completed set to a target concept
type LearningPathQuery struct {
	TargetID  string   `json:"target_id"`
	Completed []string `json:"completed"`
}

// Validate validates the query
func (q LearningPathQuery) Validate() error {
	if q.TargetID == "" {
		return errors.New("targetID is required")
	}
	return nil
}

// PathBetweenQuery asks for the ordered sequence from one concept to another
type PathBetweenQuery struct {
	FromID string `json:"from_id"`
	ToID   string `json:"to_id"`
}

// Validate validates the query
func (q PathBetweenQuery) Validate() error {
	if q.FromID == "" || q.ToID == "" {
		return errors.New("fromID and toID are required")
	}
	return nil
}

// PathStep is one entry of a learning path, enriched for display
type PathStep struct {
	ID            string `json:"id"`
	Name          string `json:"name,omitempty"`
	Layer         string `json:"layer,omitempty"`
	Difficulty    int    `json:"difficulty,omitempty"`
	EstimatedTime string `json:"estimated_time,omitempty"`
}

// LearningPathResult represents an ordered study sequence
type LearningPathResult struct {
	Target string     `json:"target"`
	Steps  []PathStep `json:"steps"`
}

// EstimateResult represents a summed study time estimate. Known is false
// when no concept on the path carried a usable estimate, in which case
// Display holds the explicit "unknown" marker.
type EstimateResult struct {
	Target       string `json:"target"`
	TotalMinutes int    `json:"total_minutes"`
	Display      string `json:"display"`
	Known        bool   `json:"known"`
}

// ProgressResult represents a learner's progress toward a target concept
type ProgressResult struct {
	Target    string `json:"target"`
	Completed int    `json:"completed"`
	Required  int    `json:"required"`
	Percent   int    `json:"percent"`
}
