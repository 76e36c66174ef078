package performance

import (
	"regexp"
	"strings"
)

// FeedbackTemplateDetector tells whether an internal task is really a feedback
// prompt, and if so, which feedback template it was created from.
type FeedbackTemplateDetector func(task InternalTask) (templateID string, ok bool)

var feedbackMarker = regexp.MustCompile(`\[feedback:([^\]\s]+)\]`)

// DetectFeedbackTemplate is the default detector. A task created from an
// ordinary task template is never a feedback task. Otherwise the explicit
// feedback template id wins over a "[feedback:<id>]" marker in the
// description, which wins over one in the title.
func DetectFeedbackTemplate(task InternalTask) (string, bool) {
	if strings.TrimSpace(task.TaskTemplateID) != "" {
		return "", false
	}
	if id := strings.TrimSpace(task.FeedbackTemplateID); id != "" {
		return id, true
	}
	for _, text := range []string{task.Description, task.Title} {
		if m := feedbackMarker.FindStringSubmatch(text); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// Answered reports whether the feedback carries a rating or a non-blank note.
func (f Feedback) Answered() bool {
	return f.Rating.Finite() || strings.TrimSpace(f.Note) != ""
}

type feedbackKey struct {
	activityID string
	id         string
}

// FeedbackIndex looks feedback up by task instance and by template,
// both scoped to the owning activity.
type FeedbackIndex struct {
	byTask     map[feedbackKey]Feedback
	byTemplate map[feedbackKey]Feedback
}

func NewFeedbackIndex(rows []Feedback) *FeedbackIndex {
	idx := &FeedbackIndex{
		byTask:     make(map[feedbackKey]Feedback),
		byTemplate: make(map[feedbackKey]Feedback),
	}
	for _, fb := range rows {
		if fb.ActivityID == "" {
			continue
		}
		if fb.TaskInstanceID != "" {
			put(idx.byTask, feedbackKey{fb.ActivityID, fb.TaskInstanceID}, fb)
		}
		if fb.TemplateID != "" {
			put(idx.byTemplate, feedbackKey{fb.ActivityID, fb.TemplateID}, fb)
		}
	}
	return idx
}

// put keeps an answered record over an unanswered one for the same key.
func put(m map[feedbackKey]Feedback, key feedbackKey, fb Feedback) {
	if existing, ok := m[key]; ok && existing.Answered() && !fb.Answered() {
		return
	}
	m[key] = fb
}

// Lookup prefers the exact task-instance match and falls back to the
// template match within the same activity.
func (idx *FeedbackIndex) Lookup(activityID, taskID, templateID string) (Feedback, bool) {
	if idx == nil || activityID == "" {
		return Feedback{}, false
	}
	if taskID != "" {
		if fb, ok := idx.byTask[feedbackKey{activityID, taskID}]; ok {
			return fb, true
		}
	}
	if templateID != "" {
		if fb, ok := idx.byTemplate[feedbackKey{activityID, templateID}]; ok {
			return fb, true
		}
	}
	return Feedback{}, false
}

// IsInternalTaskCompleted treats an answered feedback prompt the same as a
// ticked checklist item. A nil detector falls back to DetectFeedbackTemplate.
func IsInternalTaskCompleted(task InternalTask, idx *FeedbackIndex, detect FeedbackTemplateDetector) bool {
	if task.Completed {
		return true
	}
	if detect == nil {
		detect = DetectFeedbackTemplate
	}
	templateID, ok := detect(task)
	if !ok {
		return false
	}
	fb, found := idx.Lookup(task.ActivityID, task.ID, templateID)
	return found && fb.Answered()
}
