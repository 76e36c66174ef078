package performance

// TaskInput carries task rows of both sources, already scoped to the target
// week, plus the feedback answered for the internal activities they belong to.
type TaskInput struct {
	Internal []InternalTask `json:"internalTasks"`
	External []ExternalTask `json:"externalTasks"`
	Feedback []Feedback     `json:"feedback"`
	TodayIso string         `json:"todayIso"`

	Detector FeedbackTemplateDetector `json:"-"`
}

func CalculateTaskPerformanceTotals(in TaskInput) Totals {
	today := DayKey(in.TodayIso)
	idx := NewFeedbackIndex(in.Feedback)

	var totals Totals
	seen := make(idSet)
	for _, task := range in.Internal {
		if !ShouldIncludeInternalTask(task) || !seen.firstSeen(task.ID) {
			continue
		}
		completed := IsInternalTaskCompleted(task, idx, in.Detector)
		totals.count(task.ActivityDate.Day(), today, completed)
	}

	seen = make(idSet)
	for _, task := range in.External {
		if !ShouldIncludeExternalTask(task) || !seen.firstSeen(task.ID) {
			continue
		}
		totals.count(externalDay(task.Event), today, task.Completed)
	}

	return totals
}
