package progress

import (
	"errors"
	"testing"

	"prism-spend-be/pkg/redundancy"

	"github.com/google/uuid"
)

type mapStore struct {
	records map[uuid.UUID]*Record
}

func newMapStore() *mapStore {
	return &mapStore{records: make(map[uuid.UUID]*Record)}
}

func (s *mapStore) Save(record *Record) {
	copied := *record
	s.records[record.CompanyId] = &copied
}

func (s *mapStore) Get(companyId uuid.UUID) (*Record, bool) {
	r, ok := s.records[companyId]
	return r, ok
}

func (s *mapStore) Delete(companyId uuid.UUID) {
	delete(s.records, companyId)
}

func TestTrackerRejectsConcurrentRuns(t *testing.T) {
	tracker := NewTracker(newMapStore())
	companyId := uuid.New()

	if _, err := tracker.Start(companyId, uuid.New()); err != nil {
		t.Fatalf("first Start failed: %v", err)
	}
	if _, err := tracker.Start(companyId, uuid.New()); !errors.Is(err, redundancy.ErrAnalysisConflict) {
		t.Errorf("second Start err = %v, want ErrAnalysisConflict", err)
	}

	// Independent companies do not conflict.
	if _, err := tracker.Start(uuid.New(), uuid.New()); err != nil {
		t.Errorf("unrelated company Start failed: %v", err)
	}

	// A terminal run frees the slot.
	tracker.Complete(companyId)
	if _, err := tracker.Start(companyId, uuid.New()); err != nil {
		t.Errorf("Start after completion failed: %v", err)
	}
}

func TestTrackerPercentIsMonotonic(t *testing.T) {
	tracker := NewTracker(newMapStore())
	companyId := uuid.New()
	tracker.Start(companyId, uuid.New())

	tracker.Advance(companyId, "scoring overlaps", 40)
	tracker.Advance(companyId, "scoring overlaps", 20)

	record, ok := tracker.Get(companyId)
	if !ok {
		t.Fatal("record missing")
	}
	if record.Percent != 40 {
		t.Errorf("percent = %d, want 40 (never decreases)", record.Percent)
	}
	if record.Status != StatusRunning {
		t.Errorf("status = %s, want running", record.Status)
	}
}

func TestTrackerTerminalStateIsImmutable(t *testing.T) {
	tracker := NewTracker(newMapStore())
	companyId := uuid.New()
	tracker.Start(companyId, uuid.New())
	tracker.Complete(companyId)

	tracker.Advance(companyId, "late write", 10)
	tracker.Fail(companyId, "late failure")
	tracker.MarkCancelled(companyId)

	record, _ := tracker.Get(companyId)
	if record.Status != StatusCompleted {
		t.Errorf("status = %s, want completed (terminal is immutable)", record.Status)
	}
	if record.Percent != 100 {
		t.Errorf("percent = %d, want 100", record.Percent)
	}
	if record.Error != "" {
		t.Errorf("error = %q, want empty", record.Error)
	}
}

func TestTrackerCancellationFlow(t *testing.T) {
	tracker := NewTracker(newMapStore())
	companyId := uuid.New()
	tracker.Start(companyId, uuid.New())
	tracker.Advance(companyId, "scoring overlaps", 30)

	if tracker.CancelRequested(companyId) {
		t.Error("cancel requested before any request")
	}

	record, err := tracker.RequestCancel(companyId)
	if err != nil {
		t.Fatalf("RequestCancel failed: %v", err)
	}
	if !record.CancellationRequested {
		t.Error("flag not set on returned record")
	}
	if !tracker.CancelRequested(companyId) {
		t.Error("CancelRequested = false after request")
	}

	tracker.MarkCancelled(companyId)
	got, _ := tracker.Get(companyId)
	if got.Status != StatusCancelled {
		t.Errorf("status = %s, want cancelled", got.Status)
	}

	if _, err := tracker.RequestCancel(companyId); !errors.Is(err, redundancy.ErrRunNotFound) {
		t.Errorf("RequestCancel on terminal run err = %v, want ErrRunNotFound", err)
	}
}

func TestTrackerRestartAfterTerminalReplacesRecord(t *testing.T) {
	tracker := NewTracker(newMapStore())
	companyId := uuid.New()
	firstRun := uuid.New()

	tracker.Start(companyId, firstRun)
	tracker.Advance(companyId, "scoring overlaps", 60)
	tracker.Complete(companyId)

	// A fresh trigger after a terminal run replaces the record entirely.
	secondRun := uuid.New()
	record, err := tracker.Start(companyId, secondRun)
	if err != nil {
		t.Fatalf("Start after completed run failed: %v", err)
	}
	if record.RunId != secondRun {
		t.Errorf("RunId = %s, want the new run %s", record.RunId, secondRun)
	}
	if record.Status != StatusQueued {
		t.Errorf("status = %s, want queued", record.Status)
	}
	if record.Percent != 0 {
		t.Errorf("percent = %d, want 0 (old progress discarded)", record.Percent)
	}
	if record.CancellationRequested {
		t.Error("cancellation flag leaked from the previous run")
	}

	got, _ := tracker.Get(companyId)
	if got.RunId != secondRun {
		t.Errorf("stored RunId = %s, want %s", got.RunId, secondRun)
	}

	// The same holds after a failed run.
	tracker.Fail(companyId, "feature fetch failed")
	thirdRun := uuid.New()
	record, err = tracker.Start(companyId, thirdRun)
	if err != nil {
		t.Fatalf("Start after failed run failed: %v", err)
	}
	if record.Error != "" {
		t.Errorf("error = %q, want empty (old failure discarded)", record.Error)
	}
}

func TestTrackerFailureRecordsReason(t *testing.T) {
	tracker := NewTracker(newMapStore())
	companyId := uuid.New()
	tracker.Start(companyId, uuid.New())
	tracker.Advance(companyId, "scoring overlaps", 55)
	tracker.Fail(companyId, "feature fetch failed")

	record, _ := tracker.Get(companyId)
	if record.Status != StatusFailed {
		t.Errorf("status = %s, want failed", record.Status)
	}
	if record.Error != "feature fetch failed" {
		t.Errorf("error = %q", record.Error)
	}
	if record.Percent != 55 {
		t.Errorf("percent = %d, want 55 (failure keeps last progress)", record.Percent)
	}
}

func TestTrackerGetUnknownCompany(t *testing.T) {
	tracker := NewTracker(newMapStore())
	if _, ok := tracker.Get(uuid.New()); ok {
		t.Error("expected no record for unknown company")
	}
	if _, err := tracker.RequestCancel(uuid.New()); !errors.Is(err, redundancy.ErrRunNotFound) {
		t.Errorf("err = %v, want ErrRunNotFound", err)
	}
}

func TestTrackerClear(t *testing.T) {
	tracker := NewTracker(newMapStore())
	companyId := uuid.New()
	tracker.Start(companyId, uuid.New())
	tracker.Clear(companyId)

	if _, ok := tracker.Get(companyId); ok {
		t.Error("record survived Clear")
	}
}
