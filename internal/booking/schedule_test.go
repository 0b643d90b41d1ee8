package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverterRoundTrip(t *testing.T) {
	tests := []struct {
		name         string
		offset       time.Duration
		date         string
		start        string
		end          string
		wantBookedOn string // storage day, may differ from input date
	}{
		{
			name:         "GMT locale, no rollover",
			offset:       0,
			date:         "2024-06-11",
			start:        "10:00:00",
			end:          "11:00:00",
			wantBookedOn: "2024-06-11",
		},
		{
			name:         "negative offset, no rollover",
			offset:       -3 * time.Hour,
			date:         "2024-06-11",
			start:        "10:00:00",
			end:          "11:00:00",
			wantBookedOn: "2024-06-11",
		},
		{
			name:         "negative offset rolls the date forward",
			offset:       -3 * time.Hour,
			date:         "2024-06-11",
			start:        "22:30:00",
			end:          "23:30:00",
			wantBookedOn: "2024-06-12",
		},
		{
			name:         "positive offset rolls the date backward",
			offset:       5*time.Hour + 30*time.Minute,
			date:         "2024-06-11",
			start:        "01:00:00",
			end:          "02:00:00",
			wantBookedOn: "2024-06-10",
		},
		{
			name:         "minute precision accepted",
			offset:       0,
			date:         "2024-06-11",
			start:        "10:30",
			end:          "11:15",
			wantBookedOn: "2024-06-11",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conv := NewConverter(tt.offset)

			bookedOn, startsAt, endsAt, err := conv.ToStorage(tt.date, tt.start, tt.end)
			require.NoError(t, err)
			assert.Equal(t, tt.wantBookedOn, bookedOn.Format("2006-01-02"))
			assert.True(t, startsAt.Before(endsAt))

			wantStart := tt.start
			wantEnd := tt.end
			if len(wantStart) == 5 {
				wantStart += ":00"
			}
			if len(wantEnd) == 5 {
				wantEnd += ":00"
			}

			date, start, end := conv.ToDisplay(startsAt, endsAt)
			assert.Equal(t, tt.date, date)
			assert.Equal(t, wantStart, start)
			assert.Equal(t, wantEnd, end)
		})
	}
}

func TestConverterToStorageRejects(t *testing.T) {
	conv := NewConverter(0)

	tests := []struct {
		name    string
		date    string
		start   string
		end     string
		wantErr error
	}{
		{"end before start", "2024-06-11", "11:00:00", "10:00:00", ErrInvalidTimeRange},
		{"zero length slot", "2024-06-11", "10:00:00", "10:00:00", ErrInvalidTimeRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := conv.ToStorage(tt.date, tt.start, tt.end)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("malformed date", func(t *testing.T) {
		_, _, _, err := conv.ToStorage("11/06/2024", "10:00:00", "11:00:00")
		assert.Error(t, err)
	})

	t.Run("malformed time", func(t *testing.T) {
		_, _, _, err := conv.ToStorage("2024-06-11", "ten o'clock", "11:00:00")
		assert.Error(t, err)
	})
}

func TestCheckTiming(t *testing.T) {
	conv := NewConverter(0)
	// Current local time: 2024-06-10 14:00:00.
	nowLocal := time.Date(2024, 6, 10, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		date    string
		start   string
		wantErr error
	}{
		{"date in the past", "2024-06-09", "10:00:00", ErrPastDate},
		{"today, start before now", "2024-06-10", "13:59:59", ErrPastTime},
		{"today, start exactly now", "2024-06-10", "14:00:00", nil},
		{"today, start after now", "2024-06-10", "15:00:00", nil},
		{"tomorrow, any start", "2024-06-11", "00:00:00", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := conv.CheckTiming(nowLocal, tt.date, tt.start)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOverlaps(t *testing.T) {
	at := func(h, m int) time.Time {
		return time.Date(2024, 6, 11, h, m, 0, 0, time.UTC)
	}

	tests := []struct {
		name         string
		aStart, aEnd time.Time
		bStart, bEnd time.Time
		want         bool
	}{
		{"partial overlap", at(10, 0), at(11, 0), at(10, 30), at(11, 30), true},
		{"contained", at(10, 0), at(12, 0), at(10, 30), at(11, 0), true},
		{"identical", at(10, 0), at(11, 0), at(10, 0), at(11, 0), true},
		{"touching endpoints", at(10, 0), at(11, 0), at(11, 0), at(12, 0), false},
		{"disjoint", at(10, 0), at(11, 0), at(12, 0), at(13, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd)
			assert.Equal(t, tt.want, got)

			// Overlap is symmetric.
			assert.Equal(t, got, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}
