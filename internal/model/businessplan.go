package model

// SectionContent is a flat map of field id to value for one plan section.
// Values are free-form (string or number); a missing field reads as empty.
type SectionContent map[string]any

// PlanContent is the nested plan body keyed by section id.
type PlanContent map[string]SectionContent

// BusinessPlan is the plan document. Content carries no schema beyond
// convention; sections are saved one at a time and last write wins.
type BusinessPlan struct {
	ID      string
	Title   string
	Status  string
	Content PlanContent
}

// Field returns the string value of a field in a section, or "" when the
// section or field is absent.
func (p BusinessPlan) Field(sectionID, fieldID string) string {
	section, ok := p.Content[sectionID]
	if !ok {
		return ""
	}
	v, ok := section[fieldID]
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}
