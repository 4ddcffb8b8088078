package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/laupm3/workforce-backend-go/internal/domain/event"
	"github.com/laupm3/workforce-backend-go/internal/domain/schedule"
)

// AbsenceJobs sweeps elapsed schedule instances that nobody clocked
// against and flags them for reporting.
type AbsenceJobs struct {
	instanceRepo schedule.InstanceRepository
	emitter      event.Emitter
}

func NewAbsenceJobs(instanceRepo schedule.InstanceRepository, emitter event.Emitter) *AbsenceJobs {
	return &AbsenceJobs{
		instanceRepo: instanceRepo,
		emitter:      emitter,
	}
}

func (j *AbsenceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("mark_unjustified_absences", 1*time.Hour, j.MarkUnjustifiedAbsences)
}

// MarkUnjustifiedAbsences marks past unattended instances as unjustified.
// A later approved absence note overwrites the mark with justified.
func (j *AbsenceJobs) MarkUnjustifiedAbsences(ctx context.Context) error {
	// Only run at midnight (00:00-00:59 UTC)
	if time.Now().UTC().Hour() != 0 {
		return nil
	}

	slog.Info("Cron: Starting unjustified absence sweep")

	cutoff := time.Now().UTC().Add(-24 * time.Hour)
	unattended, err := j.instanceRepo.ListUnattended(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("failed to list unattended instances: %w", err)
	}

	if len(unattended) == 0 {
		slog.Info("Cron: No unattended instances found")
		return nil
	}

	marked := 0
	for _, in := range unattended {
		if err := j.instanceRepo.MarkAbsence(ctx, in.ID, schedule.AbsenceUnjustified); err != nil {
			slog.Error("Cron: Failed to mark unjustified absence", "instance_id", in.ID, "error", err)
			continue
		}
		marked++
	}

	j.emitter.Emit(ctx, event.Event{
		Type: event.TypeAbsenceSweepCompleted,
		Data: map[string]interface{}{"marked": marked},
	})

	slog.Info("Cron: Unjustified absence sweep completed", "marked", marked)
	return nil
}
