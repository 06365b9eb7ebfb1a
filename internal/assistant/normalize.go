package assistant

import "strings"

// GenericFieldID is the fallback field id. It resolves to whatever field the
// session currently has focused; with no focus it is written literally.
const GenericFieldID = "content"

// fieldRule maps a canonical plan field id to the substrings that identify
// it. A raw id matches when it contains every substring, case-insensitively.
type fieldRule struct {
	canonical  string
	substrings []string
}

// fieldRules is checked in order; more specific rules come first. Suggestion
// services return loose, free-text field identifiers ("the Market
// Opportunity section", "exec summary"), so matching is best-effort by
// design: an ambiguous id lands on its first matching rule.
var fieldRules = []fieldRule{
	{"marketOpportunity", []string{"market", "opportunit"}},
	{"targetMarket", []string{"target", "market"}},
	{"competitiveAnalysis", []string{"competit"}},
	{"marketingStrategy", []string{"marketing", "strateg"}},
	{"missionStatement", []string{"mission"}},
	{"visionStatement", []string{"vision"}},
	{"executiveSummary", []string{"executive", "summar"}},
	{"companyDescription", []string{"company", "descri"}},
	{"productsServices", []string{"product"}},
	{"managementTeam", []string{"management", "team"}},
	{"fundingRequest", []string{"funding"}},
	{"financialProjections", []string{"financ"}},
	{"operationsPlan", []string{"operation"}},
}

// NormalizeFieldID maps an arbitrary field identifier from a suggestion
// service onto a canonical plan field id. No match falls back to
// GenericFieldID; the heuristic never errors.
func NormalizeFieldID(raw string) string {
	id := strings.ToLower(strings.TrimSpace(raw))
	if id == "" {
		return GenericFieldID
	}

	for _, rule := range fieldRules {
		if strings.EqualFold(rule.canonical, id) {
			return rule.canonical
		}
	}

	for _, rule := range fieldRules {
		matched := true
		for _, sub := range rule.substrings {
			if !strings.Contains(id, sub) {
				matched = false
				break
			}
		}
		if matched {
			return rule.canonical
		}
	}
	return GenericFieldID
}

// ResolveTargetField normalizes raw and resolves the generic fallback to the
// currently focused field when one is set.
func ResolveTargetField(raw, focusedField string) string {
	id := NormalizeFieldID(raw)
	if id == GenericFieldID && focusedField != "" {
		return focusedField
	}
	return id
}
