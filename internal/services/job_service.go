package services

import (
	"time"

	"github.com/propease/propease-api/internal/jobs"
	"github.com/propease/propease-api/internal/registration"
)

// JobStatus is the operational view of background work
type JobStatus struct {
	Worker    jobs.WorkerStats        `json:"worker"`
	Schedules []jobs.ScheduleInfo     `json:"schedules"`
	Drafts    registration.StoreStats `json:"registration_drafts"`
	DraftTTL  string                  `json:"draft_ttl"`
}

type JobService struct {
	worker   *jobs.Worker
	drafts   *registration.Store
	draftTTL time.Duration
}

func NewJobService(worker *jobs.Worker, drafts *registration.Store, draftTTL time.Duration) *JobService {
	return &JobService{
		worker:   worker,
		drafts:   drafts,
		draftTTL: draftTTL,
	}
}

// GetStatus reports the worker counters, the periodic jobs and the open
// registration drafts
func (s *JobService) GetStatus() JobStatus {
	return JobStatus{
		Worker:    s.worker.GetStats(),
		Schedules: s.worker.Schedules(),
		Drafts:    s.drafts.Stats(),
		DraftTTL:  s.draftTTL.String(),
	}
}
