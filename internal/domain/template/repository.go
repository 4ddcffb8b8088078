package template

import "context"

type TemplateRepository interface {
	Create(ctx context.Context, t *Template) error
	GetByID(ctx context.Context, id string) (*Template, error)
	List(ctx context.Context, filter TemplateFilter) ([]Template, int64, error)
	Update(ctx context.Context, t *Template) error
	// ReplaceSlots swaps the template's slot set for the one carried on
	// the entity.
	ReplaceSlots(ctx context.Context, t *Template) error
	SoftDelete(ctx context.Context, id string) error
}
