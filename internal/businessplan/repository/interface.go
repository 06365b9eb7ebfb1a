package repository

import (
	"context"

	"planboard/internal/model"
)

// Repository defines data access for BusinessPlan documents.
type Repository interface {
	// GetPlan returns a zero-value plan (ID == "") when not found.
	GetPlan(ctx context.Context, id string, freshFetch bool) (model.BusinessPlan, error)
	PutPlan(ctx context.Context, plan model.BusinessPlan) (model.BusinessPlan, error)
	SaveSection(ctx context.Context, planID, sectionID string, content model.SectionContent) error
}
