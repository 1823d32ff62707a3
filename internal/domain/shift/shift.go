package shift

import (
	"fmt"
	"time"
)

// Kind is one of the three fixed 8-hour work windows at the station.
type Kind string

const (
	KindMorning   Kind = "morning"   // 07:00 - 15:00
	KindAfternoon Kind = "afternoon" // 15:00 - 23:00
	KindNight     Kind = "night"     // 23:00 - 07:00, crosses midnight
)

// IsValid reports whether k is one of the three known shift kinds.
func (k Kind) IsValid() bool {
	return k == KindMorning || k == KindAfternoon || k == KindNight
}

// TimeOfDay is a wall-clock time in local business time. No timezone, no seconds.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ErrInvalidTimeOfDay is returned when a clock string is not a valid
// zero-padded HH:MM 24-hour time.
var ErrInvalidTimeOfDay = fmt.Errorf("time must be in HH:MM 24-hour format")

// ParseTimeOfDay parses a strict zero-padded "HH:MM" string. Anything else
// (wrong separator, out-of-range components, non-numeric digits) is rejected,
// never coerced.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if len(s) != 5 || s[2] != ':' {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
		}
	}
	hour := int(s[0]-'0')*10 + int(s[1]-'0')
	minute := int(s[3]-'0')*10 + int(s[4]-'0')
	if hour > 23 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}
	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// String formats the time back as zero-padded HH:MM.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

const (
	// The attendance day does not reset at midnight. A new business day
	// starts at 03:00; anything strictly before that belongs to the
	// previous day's late-night tail. Every comparison in this package
	// goes through Normalize so the rule lives in exactly one place.
	dayResetHour  = 3
	minutesPerDay = 24 * 60
	resetMinutes  = dayResetHour * 60
)

// Normalize converts t to minutes elapsed since the most recent 03:00
// boundary. The result is always in [0, 1439]: 0 is 03:00 and 1439 is 02:59
// the next calendar day. In this coordinate every shift, including the
// midnight-crossing night shift, is a contiguous interval.
func Normalize(t TimeOfDay) int {
	raw := t.Hour*60 + t.Minute
	if t.Hour < dayResetHour {
		raw += minutesPerDay
	}
	return raw - resetMinutes
}

// Denormalize is the inverse of Normalize for m in [0, 1439].
func Denormalize(m int) TimeOfDay {
	raw := (m + resetMinutes) % minutesPerDay
	return TimeOfDay{Hour: raw / 60, Minute: raw % 60}
}

var schedule = map[Kind]struct{ Start, End TimeOfDay }{
	KindMorning:   {TimeOfDay{7, 0}, TimeOfDay{15, 0}},
	KindAfternoon: {TimeOfDay{15, 0}, TimeOfDay{23, 0}},
	KindNight:     {TimeOfDay{23, 0}, TimeOfDay{7, 0}},
}

// Schedule returns the nominal start and end of a shift. An unknown kind is
// a programming error, not recoverable input, and panics.
func Schedule(k Kind) (start, end TimeOfDay) {
	window, ok := schedule[k]
	if !ok {
		panic(fmt.Sprintf("shift: unknown kind %q", k))
	}
	return window.Start, window.End
}

// Detect classifies a check-in time into a shift. The three windows
// partition the whole business day: [05:00, 13:00) is morning,
// [13:00, 21:00) is afternoon, and the remainder is night. Boundaries are
// inclusive-low/exclusive-high, so a check-in exactly on an edge resolves
// to the later shift.
func Detect(checkIn TimeOfDay) Kind {
	m := Normalize(checkIn)
	switch {
	case m >= 120 && m < 600:
		return KindMorning
	case m >= 600 && m < 1080:
		return KindAfternoon
	default:
		return KindNight
	}
}

// Lateness returns whole minutes between the scheduled start of k and the
// actual check-in, floored at zero. Early or on-time arrival is 0.
func Lateness(checkIn TimeOfDay, k Kind) int {
	start, _ := Schedule(k)
	late := Normalize(checkIn) - Normalize(start)
	if late < 0 {
		return 0
	}
	return late
}

// Overtime returns whole minutes worked past the scheduled end of k.
// A nil checkOut means no checkout was recorded and yields 0. The result
// has no upper cap; rejecting nonsensical durations is the caller's job.
func Overtime(checkOut *TimeOfDay, k Kind) int {
	if checkOut == nil {
		return 0
	}

	start, end := Schedule(k)
	s := Normalize(start)
	e := Normalize(end)
	if e <= s {
		// Night shift: its end normalizes below its start. Pushing the
		// end one day forward linearizes the wrap into a single
		// increasing interval.
		e += minutesPerDay
	}

	out := Normalize(*checkOut)
	if out < s {
		// A night-shift checkout recorded as an early-morning time looks
		// "before" the 23:00 start in raw clock terms but is the
		// following occurrence.
		out += minutesPerDay
	}

	overtime := out - e
	if overtime < 0 {
		return 0
	}
	return overtime
}

// BusinessDate returns the attendance date now belongs to: the calendar
// date, shifted back one day when the wall clock is still before the 03:00
// reset.
func BusinessDate(now time.Time) time.Time {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if now.Hour() < dayResetHour {
		day = day.AddDate(0, 0, -1)
	}
	return day
}
