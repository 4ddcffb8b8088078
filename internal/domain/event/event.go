package event

import (
	"context"
	"time"
)

// Type identifies a domain fact emitted by a state-changing operation.
type Type string

const (
	TypeTemplateCreated        Type = "template_created"
	TypeTemplateUpdated        Type = "template_updated"
	TypeTemplateDeleted        Type = "template_deleted"
	TypeScheduleBatchGenerated Type = "schedule_batch_generated"
	TypeScheduleBatchUpdated   Type = "schedule_batch_updated"
	TypeScheduleBatchDeleted   Type = "schedule_batch_deleted"
	TypeAttendanceStateChanged Type = "attendance_state_changed"
	TypeAbsenceNoteOpened      Type = "absence_note_opened"
	TypeAbsenceNoteResolved    Type = "absence_note_resolved"
	TypeAbsenceSweepCompleted  Type = "absence_sweep_completed"
)

// Event is a plain domain fact. Delivery to external channels is the
// notification collaborator's concern, not the core's.
type Event struct {
	ID         string
	Type       Type
	OccurredAt time.Time
	ActorID    string
	Data       map[string]interface{}
}

// Emitter is the single emission point each operation publishes through.
type Emitter interface {
	Emit(ctx context.Context, evt Event)
}
