package progression

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

func TestSameCalendarDay(t *testing.T) {
	tests := []struct {
		name string
		a    time.Time
		b    time.Time
		want bool
	}{
		{
			name: "same moment",
			a:    date(2025, time.March, 10, 12, 0),
			b:    date(2025, time.March, 10, 12, 0),
			want: true,
		},
		{
			name: "same day different hours",
			a:    date(2025, time.March, 10, 0, 5),
			b:    date(2025, time.March, 10, 23, 55),
			want: true,
		},
		{
			name: "adjacent days across midnight",
			a:    date(2025, time.March, 10, 23, 55),
			b:    date(2025, time.March, 11, 0, 5),
			want: false,
		},
		{
			name: "different timezone same UTC day",
			a:    time.Date(2025, time.March, 10, 22, 0, 0, 0, time.FixedZone("UTC+2", 2*3600)),
			b:    date(2025, time.March, 10, 21, 0),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SameCalendarDay(tt.a, tt.b); got != tt.want {
				t.Errorf("SameCalendarDay() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConsecutiveDay(t *testing.T) {
	tests := []struct {
		name     string
		previous time.Time
		current  time.Time
		want     bool
	}{
		{
			name:     "next day",
			previous: date(2025, time.March, 10, 18, 0),
			current:  date(2025, time.March, 11, 9, 0),
			want:     true,
		},
		{
			name:     "same day",
			previous: date(2025, time.March, 10, 9, 0),
			current:  date(2025, time.March, 10, 18, 0),
			want:     false,
		},
		{
			name:     "two days later",
			previous: date(2025, time.March, 10, 9, 0),
			current:  date(2025, time.March, 12, 9, 0),
			want:     false,
		},
		{
			name:     "month boundary",
			previous: date(2025, time.March, 31, 20, 0),
			current:  date(2025, time.April, 1, 8, 0),
			want:     true,
		},
		{
			name:     "year boundary",
			previous: date(2024, time.December, 31, 23, 0),
			current:  date(2025, time.January, 1, 1, 0),
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ConsecutiveDay(tt.previous, tt.current); got != tt.want {
				t.Errorf("ConsecutiveDay() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWithinCooldown(t *testing.T) {
	base := date(2025, time.March, 10, 12, 0)
	window := 2 * time.Hour

	tests := []struct {
		name    string
		current time.Time
		want    bool
	}{
		{"one hour later", base.Add(time.Hour), true},
		{"exactly at window", base.Add(2 * time.Hour), false},
		{"past window", base.Add(3 * time.Hour), false},
		{"one second short", base.Add(2*time.Hour - time.Second), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WithinCooldown(base, tt.current, window); got != tt.want {
				t.Errorf("WithinCooldown() = %v, want %v", got, tt.want)
			}
		})
	}
}
