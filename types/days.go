package types

// Day-boundary arithmetic. Days here are the fixed 86400-second UTC
// days of the Unix time scale; no zone or DST adjustment applies.

const secondsPerDay = 24 * 60 * 60

// StartOfDay returns midnight UTC of the day containing i.
func (i Instant) StartOfDay() Instant {
	return Instant{Seconds: dayFloor(i.Seconds)}
}

// NextDay returns the nearest day boundary at or after i: midnight UTC
// of the following day, except that an instant already at exact
// midnight is its own boundary and does not advance.
func (i Instant) NextDay() Instant {
	start := dayFloor(i.Seconds)
	if start == i.Seconds && i.Nanos == 0 {
		return i
	}
	return NewInstant(satAdd64(start, secondsPerDay), 0)
}

// DaysBack returns midnight UTC count full days before the day
// boundary NextDay would yield: for an instant in mid-day, DaysBack(0)
// is the midnight that started its day.
func (i Instant) DaysBack(count int) Instant {
	next := i.NextDay()
	return NewInstant(satSub64(next.Seconds, secondsPerDay*(int64(count)+1)), 0)
}

// dayFloor rounds sec down to a day boundary, toward negative infinity
// for pre-epoch instants.
func dayFloor(sec int64) int64 {
	d := sec / secondsPerDay
	if sec%secondsPerDay < 0 {
		d--
	}
	return d * secondsPerDay
}
