package businessplan

import (
	"context"

	"planboard/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Detail(ctx context.Context, sc model.Scope, id string) (DetailOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (UpdateOutput, error)
	// SaveSection replaces a single section of the plan content. Last write
	// wins; no merge with concurrent saves.
	SaveSection(ctx context.Context, sc model.Scope, input SaveSectionInput) error
	// FieldValue reads one field, resolving missing sections/fields to "".
	FieldValue(ctx context.Context, sc model.Scope, planID, sectionID, fieldID string) (string, error)
	// WriteField writes one field inside a section and saves that section.
	WriteField(ctx context.Context, sc model.Scope, input WriteFieldInput) error
}
