package memory

import (
	"testing"
	"time"

	"prism-spend-be/pkg/redundancy/progress"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
)

func TestSaveAndGetReturnsCopy(t *testing.T) {
	repo := NewProgressRepository()
	companyId := uuid.New()

	record := &progress.Record{
		RunId:     uuid.New(),
		CompanyId: companyId,
		Status:    progress.StatusRunning,
		Stage:     "scoring overlaps",
		Percent:   40,
		StartedAt: time.Now(),
	}
	repo.Save(record)

	got, ok := repo.Get(companyId)
	assert.True(t, ok)
	assert.Equal(t, 40, got.Percent)

	// Mutating the snapshot must not leak back into the store.
	got.Percent = 99
	again, _ := repo.Get(companyId)
	assert.Equal(t, 40, again.Percent)

	// Nor must later mutation of the saved record.
	record.Percent = 10
	again, _ = repo.Get(companyId)
	assert.Equal(t, 40, again.Percent)
}

func TestGetUnknownCompany(t *testing.T) {
	repo := NewProgressRepository()

	got, ok := repo.Get(uuid.New())
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestDelete(t *testing.T) {
	repo := NewProgressRepository()
	companyId := uuid.New()

	repo.Save(&progress.Record{CompanyId: companyId, Status: progress.StatusQueued})
	repo.Delete(companyId)

	_, ok := repo.Get(companyId)
	assert.False(t, ok)
}

func TestRetentionPerStatus(t *testing.T) {
	assert.Equal(t, 30*time.Minute, retentionFor(progress.StatusCompleted))
	assert.Equal(t, 5*time.Minute, retentionFor(progress.StatusFailed))
	assert.Equal(t, 1*time.Minute, retentionFor(progress.StatusCancelled))
	assert.Equal(t, time.Duration(cache.NoExpiration), retentionFor(progress.StatusRunning))
	assert.Equal(t, time.Duration(cache.NoExpiration), retentionFor(progress.StatusQueued))
}
