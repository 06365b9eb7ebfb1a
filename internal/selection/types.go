package selection

// State is the single source of truth for what the sidebar shows. The
// query-string deep link and any client-side mirror are serializations of
// this record, never independent stores.
type State struct {
	SessionID        string
	SelectedCategory string // empty means "All Items"
	SelectedListID   string // set when the category is backed by a real list
	ShowChildren     bool
	ExpandedParents  []string
}

// IsAllItems reports whether the state is the cleared "All Items" view.
func (s State) IsAllItems() bool {
	return s.SelectedCategory == "" && s.SelectedListID == ""
}

// IsExpanded reports whether a parent category is expanded.
func (s State) IsExpanded(parent string) bool {
	for _, p := range s.ExpandedParents {
		if p == parent {
			return true
		}
	}
	return false
}

// --- UseCase Inputs ---

type SelectInput struct {
	SessionID string
	Category  string
	ListID    string
}

type ToggleParentInput struct {
	SessionID string
	Parent    string
}

// --- UseCase Outputs ---

type StateOutput struct {
	State State
	// DeepLink is the query string encoding of State, for shareable URLs.
	DeepLink string
}
