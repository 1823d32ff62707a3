package shift

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) TimeOfDay {
	t.Helper()
	tod, err := ParseTimeOfDay(s)
	require.NoError(t, err)
	return tod
}

func TestParseTimeOfDay(t *testing.T) {
	t.Parallel()

	valid := map[string]TimeOfDay{
		"00:00": {0, 0},
		"07:05": {7, 5},
		"23:59": {23, 59},
	}
	for input, want := range valid {
		got, err := ParseTimeOfDay(input)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}

	invalid := []string{"", "7:05", "07:5", "24:00", "12:60", "12.30", "ab:cd", "12:3x", "120:30"}
	for _, input := range invalid {
		_, err := ParseTimeOfDay(input)
		assert.ErrorIs(t, err, ErrInvalidTimeOfDay, "input %q", input)
	}
}

func TestNormalizeRoundTrip(t *testing.T) {
	t.Parallel()

	for hour := 0; hour < 24; hour++ {
		for minute := 0; minute < 60; minute++ {
			tod := TimeOfDay{Hour: hour, Minute: minute}
			m := Normalize(tod)
			require.GreaterOrEqual(t, m, 0)
			require.Less(t, m, 1440)
			require.Equal(t, tod, Denormalize(m))
		}
	}

	// 03:00 is the origin of the business day.
	assert.Equal(t, 0, Normalize(TimeOfDay{3, 0}))
	// 02:59 is the tail of the previous business day.
	assert.Equal(t, 1439, Normalize(TimeOfDay{2, 59}))
}

func TestDetect(t *testing.T) {
	t.Parallel()

	cases := []struct {
		checkIn string
		want    Kind
	}{
		{"05:00", KindMorning}, // window opens
		{"04:59", KindNight},   // one minute before the morning window
		{"07:10", KindMorning},
		{"12:59", KindMorning},
		{"13:00", KindAfternoon}, // edge resolves to the later shift
		{"15:30", KindAfternoon},
		{"20:59", KindAfternoon},
		{"21:00", KindNight},
		{"23:00", KindNight},
		{"00:30", KindNight}, // past midnight, still the night shift
		{"02:59", KindNight},
		{"03:00", KindNight},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Detect(mustParse(t, tc.checkIn)), "check-in %s", tc.checkIn)
	}
}

// Every minute of the business day must map to exactly one shift; the three
// windows partition [0,1439] with no gap or overlap.
func TestDetectPartitionsDay(t *testing.T) {
	t.Parallel()

	counts := map[Kind]int{}
	for m := 0; m < 1440; m++ {
		k := Detect(Denormalize(m))
		require.True(t, k.IsValid(), "minute %d", m)
		counts[k]++
	}
	assert.Equal(t, 480, counts[KindMorning])
	assert.Equal(t, 480, counts[KindAfternoon])
	assert.Equal(t, 480, counts[KindNight])
}

func TestLateness(t *testing.T) {
	t.Parallel()

	cases := []struct {
		checkIn string
		kind    Kind
		want    int
	}{
		{"07:10", KindMorning, 10},
		{"06:50", KindMorning, 0}, // early arrival never goes negative
		{"07:00", KindMorning, 0},
		{"15:45", KindAfternoon, 45},
		{"23:05", KindNight, 5},
		{"00:15", KindNight, 75}, // late check-in past midnight
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Lateness(mustParse(t, tc.checkIn), tc.kind), "%s %s", tc.checkIn, tc.kind)
	}
}

func TestOvertime(t *testing.T) {
	t.Parallel()

	cases := []struct {
		checkOut string
		kind     Kind
		want     int
	}{
		{"15:00", KindMorning, 0},
		{"14:30", KindMorning, 0},
		{"16:00", KindMorning, 60},
		{"23:45", KindAfternoon, 45},
		{"23:00", KindAfternoon, 0},
		{"07:00", KindNight, 0},
		// 30 minutes past the 07:00 end, even though 07:30 is numerically
		// below the 23:00 start in raw clock terms.
		{"07:30", KindNight, 30},
		{"06:45", KindNight, 0},
	}
	for _, tc := range cases {
		out := mustParse(t, tc.checkOut)
		assert.Equal(t, tc.want, Overtime(&out, tc.kind), "%s %s", tc.checkOut, tc.kind)
	}
}

func TestOvertimeWithoutCheckout(t *testing.T) {
	t.Parallel()

	for _, k := range []Kind{KindMorning, KindAfternoon, KindNight} {
		assert.Equal(t, 0, Overtime(nil, k))
	}
}

func TestOvertimeNeverNegative(t *testing.T) {
	t.Parallel()

	for _, k := range []Kind{KindMorning, KindAfternoon, KindNight} {
		for m := 0; m < 1440; m++ {
			out := Denormalize(m)
			assert.GreaterOrEqual(t, Overtime(&out, k), 0)
		}
	}
}

func TestScheduleUnknownKindPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { Schedule(Kind("graveyard")) })
}

func TestBusinessDate(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("WIB", 7*3600)

	// 02:59 still belongs to the previous day.
	got := BusinessDate(time.Date(2025, 6, 15, 2, 59, 0, 0, loc))
	assert.Equal(t, time.Date(2025, 6, 14, 0, 0, 0, 0, loc), got)

	// 03:00 opens a new day.
	got = BusinessDate(time.Date(2025, 6, 15, 3, 0, 0, 0, loc))
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, loc), got)

	got = BusinessDate(time.Date(2025, 6, 15, 23, 30, 0, 0, loc))
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, loc), got)
}
