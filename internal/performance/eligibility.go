package performance

// The predicates below decide whether a single row counts in the statistics.
// They all follow the same shape: no resolvable date means the row is excluded,
// a soft-deleted and incomplete row is excluded, everything else is included.

// ShouldIncludeInternalTask reports whether an internal task can be placed in a day bucket.
// Internal activities are never soft-deleted.
func ShouldIncludeInternalTask(task InternalTask) bool {
	return task.ActivityDate.Day() != ""
}

// ShouldIncludeExternalTask keeps dated tasks, unless the owning event was
// soft-deleted before the task got completed.
func ShouldIncludeExternalTask(task ExternalTask) bool {
	event := task.Event.First()
	if event == nil || event.StartDate.Day() == "" {
		return false
	}
	return !event.Deleted || task.Completed
}

// IsIntensityCompleted reports whether an intensity value was recorded.
// The enabling flag plays no role here.
func IsIntensityCompleted(intensity Number) bool {
	return intensity.Finite()
}

// ShouldIncludeInternalIntensity keeps dated rows that are either enabled or
// already completed, so a recorded intensity survives the flag being switched off.
func ShouldIncludeInternalIntensity(row InternalIntensity) bool {
	if row.ActivityDate.Day() == "" {
		return false
	}
	return row.IntensityEnabled || IsIntensityCompleted(row.Intensity)
}

func ShouldIncludeExternalIntensity(row ExternalIntensity) bool {
	event := row.Event.First()
	if event == nil || event.StartDate.Day() == "" {
		return false
	}

	completed := IsIntensityCompleted(row.Intensity)
	if !row.IntensityEnabled && !completed {
		return false
	}
	return !event.Deleted || completed
}

// externalDay resolves the calendar day of an external row through its owning event.
func externalDay(ref EventRef) string {
	event := ref.First()
	if event == nil {
		return ""
	}
	return event.StartDate.Day()
}
