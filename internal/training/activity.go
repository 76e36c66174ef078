package training

import (
	_ "embed"
	"time"

	"github.com/google/uuid"
)

// Schema creates the tables the repo works with.
//
//go:embed schema.sql
var Schema string

type Activity struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"userId"`
	Title            string    `json:"title"`
	Location         string    `json:"location"`
	ActivityDate     time.Time `json:"activityDate"`
	IntensityEnabled bool      `json:"intensityEnabled"`
	Intensity        *int      `json:"intensity"`
	Tasks            []Task    `json:"tasks"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// Task is a checklist item of an activity. Tasks created from a feedback
// template carry FeedbackTemplateID and no TaskTemplateID.
type Task struct {
	ID                 uuid.UUID  `json:"id"`
	ActivityID         uuid.UUID  `json:"activityId"`
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	Completed          bool       `json:"completed"`
	TaskTemplateID     *uuid.UUID `json:"taskTemplateId,omitempty"`
	FeedbackTemplateID *uuid.UUID `json:"feedbackTemplateId,omitempty"`
}

// ActivityPatch holds the fields of a tentative activity update; nil fields stay unchanged.
type ActivityPatch struct {
	Title            *string    `json:"title,omitempty"`
	Location         *string    `json:"location,omitempty"`
	ActivityDate     *time.Time `json:"activityDate,omitempty"`
	IntensityEnabled *bool      `json:"intensityEnabled,omitempty"`
}

func (p ActivityPatch) IsEmpty() bool {
	return p.Title == nil && p.Location == nil && p.ActivityDate == nil && p.IntensityEnabled == nil
}

type FeedbackInput struct {
	ActivityID     uuid.UUID  `json:"activityId"`
	TaskInstanceID *uuid.UUID `json:"taskInstanceId,omitempty"`
	TemplateID     uuid.UUID  `json:"templateId"`
	Rating         *int       `json:"rating,omitempty"`
	Note           string     `json:"note,omitempty"`
}

type FeedbackRecord struct {
	ID uuid.UUID `json:"id"`
	FeedbackInput
	UpdatedAt time.Time `json:"updatedAt"`
}
