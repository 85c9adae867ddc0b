package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/conectacare/conectacare-api/databases"
)

// Scheduler handles periodic background jobs
type Scheduler struct {
	cron    *cron.Cron
	PDB     databases.PatientDatabase
	CDB     databases.CaretakerDatabase
	Timeout time.Duration
}

// NewScheduler creates a new scheduler instance
func NewScheduler(pDB databases.PatientDatabase, cDB databases.CaretakerDatabase) *Scheduler {
	return &Scheduler{
		cron:    cron.New(cron.WithLocation(time.UTC)),
		PDB:     pDB,
		CDB:     cDB,
		Timeout: time.Minute,
	}
}

// Start registers the statistics job on the cron schedule and begins the scheduler. An
// empty schedule leaves the scheduler idle.
func (s *Scheduler) Start(schedule string) error {
	if schedule == "" {
		zap.S().Info("store statistics job disabled")
		return nil
	}
	if _, err := s.cron.AddFunc(schedule, s.logStoreStats); err != nil {
		zap.S().Errorw("failed to register store statistics job", "schedule", schedule, "error", err)
		return err
	}

	s.cron.Start()
	zap.S().Infow("scheduler started", "schedule", schedule)
	return nil
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("scheduler stopped")
}

// logStoreStats logs how many patients and caretakers are stored
func (s *Scheduler) logStoreStats() {
	ctx, cancel := context.WithTimeout(context.Background(), s.Timeout)
	defer cancel()

	patients, err := s.PDB.Count(ctx)
	if err != nil {
		zap.S().Errorw("failed to count patients", "error", err)
		return
	}
	caretakers, err := s.CDB.Count(ctx)
	if err != nil {
		zap.S().Errorw("failed to count caretakers", "error", err)
		return
	}
	zap.S().Infow("store statistics", "patients", patients, "caretakers", caretakers)
}
