package domain

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecompose(t *testing.T) {
	tests := []struct {
		name string
		diff time.Duration
		want TimeLeft
	}{
		{
			name: "one of each unit ahead",
			diff: 90061000 * time.Millisecond,
			want: TimeLeft{Days: 1, Hours: 1, Minutes: 1, Seconds: 1, Direction: DirectionCountdown},
		},
		{
			name: "one of each unit behind",
			diff: -90061000 * time.Millisecond,
			want: TimeLeft{Days: 1, Hours: 1, Minutes: 1, Seconds: 1, Direction: DirectionElapsed},
		},
		{
			name: "exactly now counts as reached",
			diff: 0,
			want: TimeLeft{Direction: DirectionElapsed},
		},
		{
			name: "one second ago",
			diff: -time.Second,
			want: TimeLeft{Seconds: 1, Direction: DirectionElapsed},
		},
		{
			name: "sub-second ahead floors to zero but still counts down",
			diff: 999 * time.Millisecond,
			want: TimeLeft{Direction: DirectionCountdown},
		},
		{
			name: "one nanosecond ahead",
			diff: time.Nanosecond,
			want: TimeLeft{Direction: DirectionCountdown},
		},
		{
			name: "just under a day",
			diff: Day - time.Millisecond,
			want: TimeLeft{Hours: 23, Minutes: 59, Seconds: 59, Direction: DirectionCountdown},
		},
		{
			name: "exactly one day",
			diff: Day,
			want: TimeLeft{Days: 1, Direction: DirectionCountdown},
		},
		{
			name: "one year behind",
			diff: -365 * Day,
			want: TimeLeft{Days: 365, Direction: DirectionElapsed},
		},
		{
			name: "ten seconds ahead",
			diff: 10 * time.Second,
			want: TimeLeft{Seconds: 10, Direction: DirectionCountdown},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decompose(tt.diff))
		})
	}
}

func TestDecompose_Saturation(t *testing.T) {
	// time.Duration(math.MinInt64) has no positive counterpart
	got := Decompose(time.Duration(math.MinInt64))

	assert.Equal(t, DirectionElapsed, got.Direction)
	assert.Equal(t, Decompose(time.Duration(math.MaxInt64)).Days, got.Days)
	assertUnitRanges(t, got)
}

func TestDecompose_UnitRanges(t *testing.T) {
	// Walk a spread of differences on both sides of zero
	step := 7*time.Hour + 13*time.Minute + 17*time.Second + 311*time.Millisecond
	for i := -500; i <= 500; i++ {
		diff := time.Duration(i) * step
		got := Decompose(diff)

		assertUnitRanges(t, got)

		if diff > 0 {
			assert.Equal(t, DirectionCountdown, got.Direction, "diff %s", diff)
		} else {
			assert.Equal(t, DirectionElapsed, got.Direction, "diff %s", diff)
		}

		// Reassembling the units gives back the difference truncated to seconds
		want := diff.Truncate(time.Second)
		assert.Equal(t, -want, got.Duration(), "diff %s", diff)
	}
}

func TestTimeLeft_Duration(t *testing.T) {
	ahead := TimeLeft{Days: 1, Hours: 2, Minutes: 3, Seconds: 4, Direction: DirectionCountdown}
	behind := ahead
	behind.Direction = DirectionElapsed

	want := Day + 2*time.Hour + 3*time.Minute + 4*time.Second
	assert.Equal(t, -want, ahead.Duration())
	assert.Equal(t, want, behind.Duration())
}

func TestState_HasError(t *testing.T) {
	assert.False(t, State{}.HasError())
	assert.True(t, State{Error: MsgInvalidTarget}.HasError())
}

func TestCompute(t *testing.T) {
	now := time.Date(2025, 12, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		target  Target
		want    TimeLeft
		wantErr bool
	}{
		{
			name:   "native time ahead",
			target: TargetFromTime(now.Add(90061 * time.Second)),
			want:   TimeLeft{Days: 1, Hours: 1, Minutes: 1, Seconds: 1, Direction: DirectionCountdown},
		},
		{
			name:   "text ahead",
			target: TargetFromString("2025-12-15T11:00:00Z"),
			want:   TimeLeft{Hours: 1, Direction: DirectionCountdown},
		},
		{
			name:   "text behind",
			target: TargetFromString("2025-12-14T10:00:00Z"),
			want:   TimeLeft{Days: 1, Direction: DirectionElapsed},
		},
		{
			name:   "target is now",
			target: TargetFromTime(now),
			want:   TimeLeft{Direction: DirectionElapsed},
		},
		{
			name:    "invalid text",
			target:  TargetFromString("invalid-date"),
			want:    ZeroTimeLeft,
			wantErr: true,
		},
		{
			name:    "zero time",
			target:  TargetFromTime(time.Time{}),
			want:    ZeroTimeLeft,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compute(tt.target, now, time.UTC)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidTarget))
				assert.Equal(t, MsgInvalidTarget, ErrorMessage(err))
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStateObserverFunc(t *testing.T) {
	var got State
	var obs StateObserver = StateObserverFunc(func(s State) { got = s })

	want := State{TimeLeft: TimeLeft{Seconds: 3, Direction: DirectionCountdown}, IsPaused: true}
	obs.OnStateChange(want)

	assert.Equal(t, want, got)
}

func assertUnitRanges(t *testing.T, tl TimeLeft) {
	t.Helper()
	assert.GreaterOrEqual(t, tl.Days, 0)
	assert.GreaterOrEqual(t, tl.Hours, 0)
	assert.Less(t, tl.Hours, 24)
	assert.GreaterOrEqual(t, tl.Minutes, 0)
	assert.Less(t, tl.Minutes, 60)
	assert.GreaterOrEqual(t, tl.Seconds, 0)
	assert.Less(t, tl.Seconds, 60)
}
