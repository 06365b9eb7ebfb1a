package usecase

import (
	"context"

	"planboard/internal/businessplan"
	"planboard/internal/model"
)

// Detail fetches a plan by ID.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (businessplan.DetailOutput, error) {
	plan, err := uc.repo.GetPlan(ctx, id, false)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetPlan: %v", err)
		return businessplan.DetailOutput{}, err
	}
	if plan.ID == "" {
		return businessplan.DetailOutput{}, businessplan.ErrPlanNotFound
	}
	return businessplan.DetailOutput{Plan: plan}, nil
}

// Update modifies plan metadata (title, status). Content is untouched; it is
// saved section-by-section.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input businessplan.UpdateInput) (businessplan.UpdateOutput, error) {
	existing, err := uc.repo.GetPlan(ctx, input.ID, true)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetPlan: %v", err)
		return businessplan.UpdateOutput{}, err
	}
	if existing.ID == "" {
		return businessplan.UpdateOutput{}, businessplan.ErrPlanNotFound
	}

	if input.Title != "" {
		existing.Title = input.Title
	}
	if input.Status != "" {
		existing.Status = input.Status
	}

	plan, err := uc.repo.PutPlan(ctx, existing)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update PutPlan: %v", err)
		return businessplan.UpdateOutput{}, err
	}
	return businessplan.UpdateOutput{Plan: plan}, nil
}

// SaveSection replaces one section of the plan content. The upstream applies
// no transformation, so a save followed by a fetch returns the same field
// values verbatim.
func (uc *implUseCase) SaveSection(ctx context.Context, sc model.Scope, input businessplan.SaveSectionInput) error {
	if input.SectionID == "" {
		return businessplan.ErrMissingSection
	}

	if err := uc.repo.SaveSection(ctx, input.PlanID, input.SectionID, input.Content); err != nil {
		uc.l.Errorf(ctx, "uc.SaveSection: %v", err)
		return err
	}
	return nil
}

// FieldValue reads one field from one section. Missing sections and fields
// read as empty, never as an error.
func (uc *implUseCase) FieldValue(ctx context.Context, sc model.Scope, planID, sectionID, fieldID string) (string, error) {
	plan, err := uc.repo.GetPlan(ctx, planID, false)
	if err != nil {
		uc.l.Errorf(ctx, "uc.FieldValue GetPlan: %v", err)
		return "", err
	}
	if plan.ID == "" {
		return "", businessplan.ErrPlanNotFound
	}
	return plan.Field(sectionID, fieldID), nil
}

// WriteField updates a single field and saves its section, preserving the
// section's other fields.
func (uc *implUseCase) WriteField(ctx context.Context, sc model.Scope, input businessplan.WriteFieldInput) error {
	if input.SectionID == "" {
		return businessplan.ErrMissingSection
	}
	if input.FieldID == "" {
		return businessplan.ErrMissingField
	}

	plan, err := uc.repo.GetPlan(ctx, input.PlanID, true)
	if err != nil {
		uc.l.Errorf(ctx, "uc.WriteField GetPlan: %v", err)
		return err
	}
	if plan.ID == "" {
		return businessplan.ErrPlanNotFound
	}

	section := plan.Content[input.SectionID]
	if section == nil {
		section = make(model.SectionContent)
	}
	section[input.FieldID] = input.Value

	if err := uc.repo.SaveSection(ctx, input.PlanID, input.SectionID, section); err != nil {
		uc.l.Errorf(ctx, "uc.WriteField SaveSection: %v", err)
		return err
	}
	return nil
}
