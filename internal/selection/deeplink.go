package selection

import "net/url"

// Query parameter names shared with the web client's deep links.
const (
	ParamListID       = "listId"
	ParamCategory     = "category"
	ParamShowChildren = "showChildren"
)

// EncodeDeepLink serializes state into the deep-link query string. The
// cache-buster t parameter is intentionally excluded: it belongs to upstream
// fetches, not to shareable links.
func EncodeDeepLink(s State) string {
	q := url.Values{}
	if s.SelectedListID != "" {
		q.Set(ParamListID, s.SelectedListID)
	}
	if s.SelectedCategory != "" {
		q.Set(ParamCategory, s.SelectedCategory)
	}
	if s.ShowChildren {
		q.Set(ParamShowChildren, "true")
	}
	return q.Encode()
}

// DecodeDeepLink parses a deep-link query string. Unknown parameters are
// ignored; a malformed query yields the zero state rather than an error.
func DecodeDeepLink(query string) State {
	q, err := url.ParseQuery(query)
	if err != nil {
		return State{}
	}
	return State{
		SelectedCategory: q.Get(ParamCategory),
		SelectedListID:   q.Get(ParamListID),
		ShowChildren:     q.Get(ParamShowChildren) == "true",
	}
}
