package training

type undoStack []func()

func (u undoStack) run() {
	for i := len(u) - 1; i >= 0; i-- {
		u[i]()
	}
}

// setField writes value into field, remembering the previous value. A nil value leaves the field alone.
func setField[T any](u *undoStack, field *T, value *T) {
	if value == nil {
		return
	}
	prev := *field
	*field = *value
	*u = append(*u, func() { *field = prev })
}

// PatchActivity applies the non-nil fields of p to a and returns a closure
// that restores the values a had before.
func PatchActivity(a *Activity, p ActivityPatch) (undo func()) {
	var u undoStack
	setField(&u, &a.Title, p.Title)
	setField(&u, &a.Location, p.Location)
	setField(&u, &a.ActivityDate, p.ActivityDate)
	setField(&u, &a.IntensityEnabled, p.IntensityEnabled)
	return u.run
}

// setTaskCompleted marks the i-th task of a, returning a closure that reverts it.
func setTaskCompleted(a *Activity, i int, completed bool) (undo func()) {
	var u undoStack
	setField(&u, &a.Tasks[i].Completed, &completed)
	return u.run
}

func setIntensity(a *Activity, intensity *int) (undo func()) {
	var u undoStack
	enabled := true
	setField(&u, &a.IntensityEnabled, &enabled)
	setField(&u, &a.Intensity, &intensity)
	return u.run
}
