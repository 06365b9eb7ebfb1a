package category

import "strings"

const (
	// Scores for the parent-match heuristic.
	containmentScore = 5
	sharedWordScore  = 2
	minSharedWordLen = 4
	scoreThreshold   = 2
)

// PlanStepsParent is the fixed parent for business-plan section categories.
const PlanStepsParent = "Steps to Create a Business Plan"

// planSections are the business-plan section names that short-circuit to
// PlanStepsParent before the scoring heuristic runs.
var planSections = map[string]struct{}{
	"executive summary":      {},
	"company description":    {},
	"market analysis":        {},
	"products and services":  {},
	"marketing and sales":    {},
	"marketing plan":         {},
	"operations plan":        {},
	"management team":        {},
	"funding request":        {},
	"financial projections":  {},
	"financial plan":         {},
	"appendix":               {},
	"steps to create a plan": {},
}

// InferParent assigns the best-matching parent for a virtual category that
// carries no explicit parent. Fixed business-plan section names map straight
// to PlanStepsParent when it is among the candidates. Otherwise each
// candidate parent is scored: substring containment either way is worth 5,
// every shared word longer than 3 characters is worth 2. The highest score
// above the threshold wins; anything else stays unparented.
func InferParent(name string, parents []string) string {
	if _, ok := planSections[strings.ToLower(strings.TrimSpace(name))]; ok {
		for _, p := range parents {
			if p == PlanStepsParent {
				return p
			}
		}
	}

	best := ""
	bestScore := 0
	for _, parent := range parents {
		if parent == name {
			continue
		}
		score := MatchScore(parent, name)
		if score > bestScore {
			best = parent
			bestScore = score
		}
	}

	if bestScore > scoreThreshold {
		return best
	}
	return ""
}

// MatchScore scores how likely child belongs under parent.
func MatchScore(parent, child string) int {
	p := strings.ToLower(strings.TrimSpace(parent))
	c := strings.ToLower(strings.TrimSpace(child))
	if p == "" || c == "" {
		return 0
	}

	score := 0
	if strings.Contains(p, c) {
		score += containmentScore
	}
	if strings.Contains(c, p) {
		score += containmentScore
	}

	childWords := make(map[string]struct{})
	for _, w := range strings.Fields(c) {
		if len(w) >= minSharedWordLen {
			childWords[w] = struct{}{}
		}
	}
	for _, w := range strings.Fields(p) {
		if len(w) < minSharedWordLen {
			continue
		}
		if _, ok := childWords[w]; ok {
			score += sharedWordScore
		}
	}

	return score
}
