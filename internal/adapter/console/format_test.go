package console

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/countdown-timer/countdown/internal/domain"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name  string
		state domain.State
		want  string
	}{
		{
			name: "counting down",
			state: domain.State{
				TimeLeft: domain.TimeLeft{Days: 1, Hours: 1, Minutes: 1, Seconds: 1, Direction: domain.DirectionCountdown},
			},
			want: "-1d 01:01:01",
		},
		{
			name: "counting up",
			state: domain.State{
				TimeLeft: domain.TimeLeft{Seconds: 5, Direction: domain.DirectionElapsed},
			},
			want: "+0d 00:00:05",
		},
		{
			name: "paused",
			state: domain.State{
				TimeLeft: domain.TimeLeft{Hours: 23, Minutes: 59, Seconds: 59, Direction: domain.DirectionCountdown},
				IsPaused: true,
			},
			want: "-0d 23:59:59 (paused)",
		},
		{
			name:  "nothing computed yet",
			state: domain.State{TimeLeft: domain.ZeroTimeLeft, IsPaused: true},
			want:  " 0d 00:00:00 (paused)",
		},
		{
			name:  "invalid target",
			state: domain.State{TimeLeft: domain.ZeroTimeLeft, Error: domain.MsgInvalidTarget},
			want:  "! Invalid target date.",
		},
		{
			name: "many days",
			state: domain.State{
				TimeLeft: domain.TimeLeft{Days: 365, Direction: domain.DirectionElapsed},
			},
			want: "+365d 00:00:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.state))
		})
	}
}
