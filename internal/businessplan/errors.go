package businessplan

import "errors"

var (
	ErrPlanNotFound   = errors.New("business plan not found")
	ErrMissingSection = errors.New("section id is required")
	ErrMissingField   = errors.New("field id is required")
)
