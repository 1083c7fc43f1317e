package memory

import (
	"time"

	"prism-spend-be/pkg/redundancy/progress"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// ProgressRepository keeps analysis progress records in memory. Terminal
// records linger long enough for a polling client to observe the final state,
// then expire on their own.
type ProgressRepository struct {
	cache *cache.Cache
}

const (
	completedRetention = 30 * time.Minute
	failedRetention    = 5 * time.Minute
	cancelledRetention = 1 * time.Minute
)

func NewProgressRepository() *ProgressRepository {
	c := cache.New(cache.NoExpiration, 10*time.Minute)
	return &ProgressRepository{
		cache: c,
	}
}

func (r *ProgressRepository) Save(record *progress.Record) {
	copied := *record
	r.cache.Set(record.CompanyId.String(), &copied, retentionFor(record.Status))
}

func (r *ProgressRepository) Get(companyId uuid.UUID) (*progress.Record, bool) {
	if x, found := r.cache.Get(companyId.String()); found {
		record := *x.(*progress.Record)
		return &record, true
	}
	return nil, false
}

func (r *ProgressRepository) Delete(companyId uuid.UUID) {
	r.cache.Delete(companyId.String())
}

func retentionFor(status progress.Status) time.Duration {
	switch status {
	case progress.StatusCompleted:
		return completedRetention
	case progress.StatusFailed:
		return failedRetention
	case progress.StatusCancelled:
		return cancelledRetention
	default:
		return cache.NoExpiration
	}
}
