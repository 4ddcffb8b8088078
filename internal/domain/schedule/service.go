package schedule

import "context"

type ScheduleService interface {
	GenerateFromTemplate(ctx context.Context, req GenerateScheduleRequest) (BatchResponse, error)
	BulkCreate(ctx context.Context, req BulkCreateScheduleRequest) (BatchResponse, error)
	BulkUpdate(ctx context.Context, req BulkUpdateScheduleRequest) (BatchResponse, error)
	BulkDelete(ctx context.Context, req BulkDeleteScheduleRequest) (BatchResponse, error)
	GetInstance(ctx context.Context, id string) (InstanceResponse, error)
	ListInstances(ctx context.Context, filter InstanceFilter) ([]InstanceResponse, error)
}
