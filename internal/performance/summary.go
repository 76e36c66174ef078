package performance

import "math"

// Summary is the combined task + intensity progress shown in the app.
type Summary struct {
	Percentage            int `json:"percentage"`
	CompletedTasks        int `json:"completedTasks"`
	TotalTasks            int `json:"totalTasks"`
	CompletedTasksForWeek int `json:"completedTasksForWeek"`
	TotalTasksForWeek     int `json:"totalTasksForWeek"`
}

// ZeroSummary is reported whenever the statistics could not be computed.
func ZeroSummary() Summary {
	return Summary{}
}

func Summarize(tasks, intensity Totals) Summary {
	all := tasks.Plus(intensity)
	return Summary{
		Percentage:            Percentage(all.CompletedToday, all.TotalToday),
		CompletedTasks:        all.CompletedToday,
		TotalTasks:            all.TotalToday,
		CompletedTasksForWeek: all.CompletedWeek,
		TotalTasksForWeek:     all.TotalWeek,
	}
}

// Percentage rounds half up, and is 0 when there is nothing to complete.
func Percentage(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Floor(100*float64(completed)/float64(total) + 0.5))
}
