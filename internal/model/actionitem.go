package model

import "time"

// ActionItem is a single to-do line. Content may carry a leading bracketed
// label ("[Marketing] call the printer") which the category engine turns
// into a virtual category.
type ActionItem struct {
	ID          string
	Content     string
	IsCompleted bool
	ListID      string // empty when the item belongs to no list
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ActionList is a persisted grouping of items. Lists form a two-level tree:
// a list with no ParentID is a parent, anything else is a child.
type ActionList struct {
	ID       string
	Name     string
	ParentID string // empty for parents
	Ordinal  int
}

// IsParent reports whether the list sits at the top of the tree.
func (l ActionList) IsParent() bool {
	return l.ParentID == ""
}

// Category is the derived sidebar grouping. It is never persisted: every
// derivation pass rebuilds the set from real lists and bracket-labelled
// item content.
type Category struct {
	Name           string
	Count          int
	CompletedCount int
	IsParent       bool
	ParentName     string // empty when unparented
	IsVirtual      bool   // true when mined from item content, not a real list
	ListID         string // set when backed by a real ActionList
}
