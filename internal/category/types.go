package category

import "planboard/internal/model"

// DeriveInput controls a derivation pass.
type DeriveInput struct {
	FreshFetch bool // bypass upstream caches
}

// DeriveOutput is the deduplicated category set for sidebar rendering.
// Real-list categories come first (ordinal order), virtual ones follow
// alphabetically.
type DeriveOutput struct {
	Categories []model.Category
}
