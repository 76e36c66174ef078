package performance

// IntensityInput carries intensity rows already scoped to the target week
// by the caller's query boundaries; the calculation does not bound by week itself.
type IntensityInput struct {
	Internal []InternalIntensity `json:"internalIntensityRows"`
	External []ExternalIntensity `json:"externalIntensityRows"`
	TodayIso string              `json:"todayIso"`
}

// CalculateIntensityPerformanceTotals counts eligible intensity rows of both
// sources for the week and for the days up to (and including) today.
func CalculateIntensityPerformanceTotals(in IntensityInput) Totals {
	today := DayKey(in.TodayIso)

	var totals Totals
	seen := make(idSet)
	for _, row := range in.Internal {
		if !ShouldIncludeInternalIntensity(row) || !seen.firstSeen(row.ID) {
			continue
		}
		totals.count(row.ActivityDate.Day(), today, IsIntensityCompleted(row.Intensity))
	}

	seen = make(idSet)
	for _, row := range in.External {
		if !ShouldIncludeExternalIntensity(row) || !seen.firstSeen(row.ID) {
			continue
		}
		totals.count(externalDay(row.Event), today, IsIntensityCompleted(row.Intensity))
	}

	return totals
}
