package response

import (
	"encoding/json"
	"time"
)

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// DateTime marshals a timestamp as DateTimeFormat in local time. Presenters
// use it so every endpoint renders timestamps the same way.
type DateTime time.Time

// NewDateTime wraps t, returning nil for the zero time so the field is
// omitted from the response.
func NewDateTime(t time.Time) *DateTime {
	if t.IsZero() {
		return nil
	}
	dt := DateTime(t)
	return &dt
}

// MarshalJSON implements json.Marshaler for DateTime.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Local().Format(DateTimeFormat))
}
