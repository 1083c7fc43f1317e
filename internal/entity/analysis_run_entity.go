// Domain entity for analysis runs (persisted lifecycle of one pipeline
// execution; live progress is tracked separately in memory)
package entity

import (
	"time"

	"github.com/google/uuid"
)

type RunStatus string

const (
	RunStatusQueued    RunStatus = "queued"
	RunStatusRunning   RunStatus = "running"
	RunStatusCompleted RunStatus = "completed"
	RunStatusFailed    RunStatus = "failed"
	RunStatusCancelled RunStatus = "cancelled"
)

// IsTerminal reports whether no further transitions are allowed.
func (s RunStatus) IsTerminal() bool {
	switch s {
	case RunStatusCompleted, RunStatusFailed, RunStatusCancelled:
		return true
	}
	return false
}

// AnalysisRun is one execution of the redundancy pipeline for a company.
// At most one non-terminal run exists per company at a time.
type AnalysisRun struct {
	Id           uuid.UUID
	CompanyId    uuid.UUID
	Status       RunStatus
	Stage        string
	Percent      int
	Result       *AnalysisResult // populated only on completed runs
	ErrorSummary string          // populated only on failed runs
	StartedAt    time.Time
	FinishedAt   *time.Time
}
