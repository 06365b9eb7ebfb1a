package businessplan

import "planboard/internal/model"

// --- UseCase Inputs ---

type UpdateInput struct {
	ID     string
	Title  string
	Status string
}

type SaveSectionInput struct {
	PlanID    string
	SectionID string
	Content   model.SectionContent
}

type WriteFieldInput struct {
	PlanID    string
	SectionID string
	FieldID   string
	Value     string
}

// --- UseCase Outputs ---

type DetailOutput struct {
	Plan model.BusinessPlan
}

type UpdateOutput struct {
	Plan model.BusinessPlan
}
