package planner

import (
	"context"

	"planboard/internal/businessplan/repository"
	"planboard/internal/model"
	pkgLog "planboard/pkg/log"
	"planboard/pkg/planapi"
)

type implRepository struct {
	client *planapi.Client
	l      pkgLog.Logger
}

// New creates the plan-API-backed business plan repository.
func New(client *planapi.Client, l pkgLog.Logger) repository.Repository {
	if client == nil {
		panic("businessplan/repository/planner: client is required")
	}
	return &implRepository{client: client, l: l}
}

// GetPlan fetches a plan. Not-found maps to a zero-value plan.
func (r *implRepository) GetPlan(ctx context.Context, id string, freshFetch bool) (model.BusinessPlan, error) {
	plan, err := r.client.GetBusinessPlan(ctx, id, freshFetch)
	if planapi.IsNotFound(err) {
		return model.BusinessPlan{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "businessplan/repository/planner.GetPlan: %v", err)
		return model.BusinessPlan{}, repository.ErrFailedToGet
	}
	return toModelPlan(plan), nil
}

// PutPlan replaces the plan document upstream.
func (r *implRepository) PutPlan(ctx context.Context, plan model.BusinessPlan) (model.BusinessPlan, error) {
	updated, err := r.client.PutBusinessPlan(ctx, toWirePlan(plan))
	if err != nil {
		r.l.Errorf(ctx, "businessplan/repository/planner.PutPlan: %v", err)
		return model.BusinessPlan{}, repository.ErrFailedToPut
	}
	return toModelPlan(updated), nil
}

// SaveSection saves one section of the plan.
func (r *implRepository) SaveSection(ctx context.Context, planID, sectionID string, content model.SectionContent) error {
	err := r.client.SaveSection(ctx, planID, planapi.SaveSectionRequest{
		SectionID: sectionID,
		Content:   content,
	})
	if err != nil {
		r.l.Errorf(ctx, "businessplan/repository/planner.SaveSection: %v", err)
		return repository.ErrFailedToSave
	}
	return nil
}

func toModelPlan(p planapi.BusinessPlan) model.BusinessPlan {
	content := make(model.PlanContent, len(p.Content))
	for sectionID, fields := range p.Content {
		section := make(model.SectionContent, len(fields))
		for k, v := range fields {
			section[k] = v
		}
		content[sectionID] = section
	}
	return model.BusinessPlan{
		ID:      p.ID,
		Title:   p.Title,
		Status:  p.Status,
		Content: content,
	}
}

func toWirePlan(p model.BusinessPlan) planapi.BusinessPlan {
	content := make(map[string]map[string]any, len(p.Content))
	for sectionID, fields := range p.Content {
		content[sectionID] = map[string]any(fields)
	}
	return planapi.BusinessPlan{
		ID:      p.ID,
		Title:   p.Title,
		Status:  p.Status,
		Content: content,
	}
}
