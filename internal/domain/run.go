package domain

import "time"

type RunStatus string

const (
	RunStatusFetching RunStatus = "fetching"
	RunStatusLoaded   RunStatus = "loaded"
	RunStatusFailed   RunStatus = "failed"
)

// RunResult summarizes one extract-load pass.
type RunResult struct {
	RunID      string
	Schema     string
	Status     RunStatus
	Symbols    []string
	Rows       int
	StartedAt  time.Time
	FinishedAt time.Time
}
