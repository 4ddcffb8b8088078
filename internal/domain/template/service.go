package template

import "context"

type TemplateService interface {
	CreateTemplate(ctx context.Context, actorID string, centerID string, req CreateTemplateRequest) (TemplateResponse, error)
	GetTemplate(ctx context.Context, id string) (TemplateResponse, error)
	ListTemplates(ctx context.Context, filter TemplateFilter) (ListTemplateResponse, error)
	UpdateTemplate(ctx context.Context, actorID string, centerID string, req UpdateTemplateRequest) (TemplateResponse, error)
	DeleteTemplate(ctx context.Context, actorID string, id string) error
}
