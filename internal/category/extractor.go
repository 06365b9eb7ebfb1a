package category

import (
	"regexp"
	"strings"
)

// labelPattern matches a leading bracketed or braced label:
// "[Marketing] run ads" or "{Marketing} run ads".
var labelPattern = regexp.MustCompile(`^\s*[\[\{](.*?)[\]\}]`)

// ExtractLabel returns the trimmed category label at the head of item
// content. Content without a leading bracket or brace yields ok == false —
// malformed syntax is never an error, it simply produces no virtual category.
func ExtractLabel(content string) (label string, ok bool) {
	m := labelPattern.FindStringSubmatch(content)
	if m == nil {
		return "", false
	}
	label = strings.TrimSpace(m[1])
	if label == "" {
		return "", false
	}
	return label, true
}

// StripLabel returns item content with its leading label removed, for
// display inside a category-scoped view.
func StripLabel(content string) string {
	loc := labelPattern.FindStringIndex(content)
	if loc == nil {
		return content
	}
	return strings.TrimSpace(content[loc[1]:])
}

// Tally accumulates per-label item counts while scanning a flat item set.
type Tally struct {
	Count     int
	Completed int
}

// TallyLabels scans contents/completed pairs and accumulates counts per
// extracted label. The two slices must be the same length.
func TallyLabels(contents []string, completed []bool) map[string]Tally {
	out := make(map[string]Tally)
	for i, content := range contents {
		label, ok := ExtractLabel(content)
		if !ok {
			continue
		}
		t := out[label]
		t.Count++
		if i < len(completed) && completed[i] {
			t.Completed++
		}
		out[label] = t
	}
	return out
}
