package assistant

import "strings"

// approvalPhrases are user replies that accept the pending suggestion
// outright, compared after lowercasing and trimming punctuation.
var approvalPhrases = map[string]struct{}{
	"yes":          {},
	"y":            {},
	"yeah":         {},
	"yep":          {},
	"ok":           {},
	"okay":         {},
	"sure":         {},
	"apply":        {},
	"apply it":     {},
	"do it":        {},
	"go ahead":     {},
	"sounds good":  {},
	"looks good":   {},
	"use it":       {},
	"use that":     {},
	"yes please":   {},
	"please apply": {},
}

// IsApproval reports whether text is a bare acceptance of a shown
// suggestion. Longer replies starting with "yes," or "ok," also count;
// anything with more substance is treated as a new request.
func IsApproval(text string) bool {
	t := strings.ToLower(strings.TrimSpace(text))
	t = strings.TrimRight(t, ".!")
	if t == "" {
		return false
	}
	if _, ok := approvalPhrases[t]; ok {
		return true
	}
	for _, prefix := range []string{"yes,", "yes ", "ok,", "okay,"} {
		if strings.HasPrefix(t, prefix) && len(t) <= len(prefix)+12 {
			return true
		}
	}
	return false
}
