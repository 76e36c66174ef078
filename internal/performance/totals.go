package performance

// Totals holds the four counters produced by one aggregation pass.
type Totals struct {
	TotalWeek      int `json:"totalWeek"`
	CompletedWeek  int `json:"completedWeek"`
	TotalToday     int `json:"totalToday"`
	CompletedToday int `json:"completedToday"`
}

func (t Totals) Plus(other Totals) Totals {
	return Totals{
		TotalWeek:      t.TotalWeek + other.TotalWeek,
		CompletedWeek:  t.CompletedWeek + other.CompletedWeek,
		TotalToday:     t.TotalToday + other.TotalToday,
		CompletedToday: t.CompletedToday + other.CompletedToday,
	}
}

// count adds one eligible row. Every eligible row counts toward the week,
// rows dated on or before today also count toward "today".
func (t *Totals) count(day, todayIso string, completed bool) {
	t.TotalWeek++
	if completed {
		t.CompletedWeek++
	}
	if !OnOrBefore(day, todayIso) {
		return
	}
	t.TotalToday++
	if completed {
		t.CompletedToday++
	}
}

// idSet makes sure a row id is counted at most once per source.
// Rows without an id can't be matched and are always counted.
type idSet map[string]struct{}

func (s idSet) firstSeen(id string) bool {
	if id == "" {
		return true
	}
	if _, ok := s[id]; ok {
		return false
	}
	s[id] = struct{}{}
	return true
}
