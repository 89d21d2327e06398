package model

import "math"

// Stats are the aggregate counts shown on the dashboard.
type Stats struct {
	TotalNotes     int `json:"totalNotes"`
	TotalTasks     int `json:"totalTasks"`
	CompletedTasks int `json:"completedTasks"`
	PendingTasks   int `json:"pendingTasks"`
	AILearnings    int `json:"aiLearnings"`
}

// CompletionRate returns completed tasks as a rounded percentage.
func (stats Stats) CompletionRate() int {
	if stats.TotalTasks <= 0 {
		return 0
	}
	return int(math.Round(float64(stats.CompletedTasks) / float64(stats.TotalTasks) * 100))
}
