package performance

import (
	"bytes"
	"encoding/json"
	"math"
)

var jsonNull = []byte("null")

// Number is an optional numeric value as delivered by the backend.
// Anything that is not a JSON number (null, strings, bools, objects) decodes to
// an absent Number instead of failing the whole payload.
type Number struct {
	Value float64
	Valid bool
}

func NewNumber(v float64) Number {
	return Number{Value: v, Valid: true}
}

// Finite reports whether the number is present and neither NaN nor ±Inf.
func (n Number) Finite() bool {
	return n.Valid && !math.IsNaN(n.Value) && !math.IsInf(n.Value, 0)
}

func (n *Number) UnmarshalJSON(b []byte) error {
	*n = Number{}
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, jsonNull) {
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return nil
	}
	*n = NewNumber(v)
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Finite() {
		return jsonNull, nil
	}
	return json.Marshal(n.Value)
}

// DateString holds a calendar date (or timestamp) in ISO form.
// Non-string JSON values decode to an empty, unresolvable date.
type DateString string

func (d *DateString) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		*d = ""
		return nil
	}
	*d = DateString(s)
	return nil
}

// Day returns the YYYY-MM-DD part of the date, or "" when there is no date.
func (d DateString) Day() string {
	return DayKey(string(d))
}

type ExternalEvent struct {
	ID        string     `json:"id,omitempty"`
	StartDate DateString `json:"start_date"`
	Deleted   bool       `json:"deleted"`
}

// EventRef is the owning-event reference of an external row. The backend
// delivers it either as a single object or as a one-element list; both
// decode to the same normalized event.
type EventRef struct {
	event *ExternalEvent
}

func RefTo(event ExternalEvent) EventRef {
	return EventRef{event: &event}
}

// First returns the normalized owning event, nil if none resolved.
func (r EventRef) First() *ExternalEvent {
	return r.event
}

func (r *EventRef) UnmarshalJSON(b []byte) error {
	r.event = nil
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return nil
	}

	switch b[0] {
	case '[':
		var list []json.RawMessage
		if err := json.Unmarshal(b, &list); err != nil || len(list) == 0 {
			return nil
		}
		b = bytes.TrimSpace(list[0])
		if len(b) == 0 || b[0] != '{' {
			return nil
		}
	case '{':
	default:
		return nil
	}

	var event ExternalEvent
	if err := json.Unmarshal(b, &event); err != nil {
		return nil
	}
	r.event = &event
	return nil
}

func (r EventRef) MarshalJSON() ([]byte, error) {
	if r.event == nil {
		return jsonNull, nil
	}
	return json.Marshal(r.event)
}

// InternalTask is a task row that belongs to an activity created in the app.
type InternalTask struct {
	ID                 string     `json:"id,omitempty"`
	ActivityID         string     `json:"activity_id,omitempty"`
	Title              string     `json:"title,omitempty"`
	Description        string     `json:"description,omitempty"`
	Completed          bool       `json:"completed"`
	ActivityDate       DateString `json:"activity_date"`
	TaskTemplateID     string     `json:"task_template_id,omitempty"`
	FeedbackTemplateID string     `json:"feedback_template_id,omitempty"`
}

// ExternalTask is a task row attached to an event synced from an external calendar.
type ExternalTask struct {
	ID        string   `json:"id,omitempty"`
	Completed bool     `json:"completed"`
	Event     EventRef `json:"event"`
}

type InternalIntensity struct {
	ID               string     `json:"id,omitempty"`
	ActivityDate     DateString `json:"activity_date"`
	IntensityEnabled bool       `json:"intensity_enabled"`
	Intensity        Number     `json:"intensity"`
}

type ExternalIntensity struct {
	ID               string   `json:"id,omitempty"`
	IntensityEnabled bool     `json:"intensity_enabled"`
	Intensity        Number   `json:"intensity"`
	Event            EventRef `json:"event"`
}

// Feedback is a self-feedback answer given for a task of an activity.
type Feedback struct {
	ActivityID     string `json:"activity_id"`
	TaskInstanceID string `json:"task_instance_id,omitempty"`
	TemplateID     string `json:"template_id,omitempty"`
	Rating         Number `json:"rating"`
	Note           string `json:"note,omitempty"`
}
