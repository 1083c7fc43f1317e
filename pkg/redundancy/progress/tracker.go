// Per-company progress state machine for long-running analysis runs.
package progress

import (
	"sync"
	"time"

	"prism-spend-be/pkg/redundancy"

	"github.com/google/uuid"
)

type Status string

const (
	StatusQueued    Status = "queued"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed || s == StatusCancelled
}

// Record is the polled progress snapshot for one analysis run.
type Record struct {
	RunId                 uuid.UUID `json:"runId"`
	CompanyId             uuid.UUID `json:"companyId"`
	Status                Status    `json:"status"`
	Stage                 string    `json:"stage"`
	Percent               int       `json:"percent"`
	Error                 string    `json:"error,omitempty"`
	CancellationRequested bool      `json:"cancellationRequested"`
	StartedAt             time.Time `json:"startedAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

// Store persists records keyed by company. Implementations decide retention
// per status (terminal records expire, active ones do not).
type Store interface {
	Save(record *Record)
	Get(companyId uuid.UUID) (*Record, bool)
	Delete(companyId uuid.UUID)
}

// Tracker serializes writes so that percent stays monotonic within a run and
// terminal states are immutable. Reads never block the running analysis
// beyond the brief critical section.
type Tracker struct {
	mu    sync.Mutex
	store Store
}

func NewTracker(store Store) *Tracker {
	return &Tracker{store: store}
}

// Start registers a queued run for the company. At most one non-terminal run
// per company is allowed; a second trigger gets ErrAnalysisConflict.
func (t *Tracker) Start(companyId, runId uuid.UUID) (*Record, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if existing, ok := t.store.Get(companyId); ok && !existing.Status.IsTerminal() {
		return nil, redundancy.ErrAnalysisConflict
	}

	now := time.Now()
	record := &Record{
		RunId:     runId,
		CompanyId: companyId,
		Status:    StatusQueued,
		Stage:     "queued",
		Percent:   0,
		StartedAt: now,
		UpdatedAt: now,
	}
	t.store.Save(record)
	return snapshot(record), nil
}

// Advance moves a run to running with the given stage label. Percent never
// decreases; updates after a terminal state are dropped.
func (t *Tracker) Advance(companyId uuid.UUID, stage string, percent int) {
	t.mutate(companyId, func(r *Record) {
		r.Status = StatusRunning
		r.Stage = stage
		if percent > r.Percent {
			r.Percent = percent
		}
	})
}

func (t *Tracker) Complete(companyId uuid.UUID) {
	t.mutate(companyId, func(r *Record) {
		r.Status = StatusCompleted
		r.Stage = "completed"
		r.Percent = 100
	})
}

func (t *Tracker) Fail(companyId uuid.UUID, reason string) {
	t.mutate(companyId, func(r *Record) {
		r.Status = StatusFailed
		r.Stage = "failed"
		r.Error = reason
	})
}

func (t *Tracker) MarkCancelled(companyId uuid.UUID) {
	t.mutate(companyId, func(r *Record) {
		r.Status = StatusCancelled
		r.Stage = "cancelled"
	})
}

// RequestCancel flips the cancellation flag on an active run. The running
// aggregation observes the flag at the next category boundary.
func (t *Tracker) RequestCancel(companyId uuid.UUID) (*Record, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	record, ok := t.store.Get(companyId)
	if !ok || record.Status.IsTerminal() {
		return nil, redundancy.ErrRunNotFound
	}
	record.CancellationRequested = true
	record.UpdatedAt = time.Now()
	t.store.Save(record)
	return snapshot(record), nil
}

// CancelRequested reports whether cancellation was requested; the run polls
// this between category boundaries.
func (t *Tracker) CancelRequested(companyId uuid.UUID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	record, ok := t.store.Get(companyId)
	return ok && record.CancellationRequested
}

func (t *Tracker) Get(companyId uuid.UUID) (*Record, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	record, ok := t.store.Get(companyId)
	if !ok {
		return nil, false
	}
	return snapshot(record), true
}

func (t *Tracker) Clear(companyId uuid.UUID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.store.Delete(companyId)
}

func (t *Tracker) mutate(companyId uuid.UUID, apply func(*Record)) {
	t.mu.Lock()
	defer t.mu.Unlock()

	record, ok := t.store.Get(companyId)
	if !ok || record.Status.IsTerminal() {
		return
	}
	apply(record)
	record.UpdatedAt = time.Now()
	t.store.Save(record)
}

func snapshot(r *Record) *Record {
	copied := *r
	return &copied
}
