package booking

import (
	"net/http"
	"time"

	"github.com/esteveseverson/fastapi-playtime/internal/pkg/apperror"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"

	day = 24 * time.Hour
)

// timeOfDayLayouts are accepted for start/end values; output always uses
// timeLayout.
var timeOfDayLayouts = []string{"15:04:05", "15:04"}

// Converter translates booking slots between the caller-facing local
// representation (date + wall-clock start/end at a fixed UTC offset) and
// the UTC values kept in storage. All methods are pure.
type Converter struct {
	offset time.Duration // local = UTC + offset
}

// NewConverter creates a Converter for the given local-to-UTC offset.
// A zero offset means local time is GMT.
func NewConverter(offset time.Duration) Converter {
	return Converter{offset: offset}
}

// ToStorage converts a local (date, start, end) slot into storage values.
// The storage day is derived from the converted start instant, so an
// offset that crosses midnight rolls the date instead of being dropped.
func (c Converter) ToStorage(date, start, end string) (bookedOn, startsAt, endsAt time.Time, err error) {
	dayStart, err := parseDate(date)
	if err != nil {
		return time.Time{}, time.Time{}, time.Time{}, err
	}

	startOfDay, err := parseTimeOfDay(start)
	if err != nil {
		return time.Time{}, time.Time{}, time.Time{}, err
	}
	endOfDay, err := parseTimeOfDay(end)
	if err != nil {
		return time.Time{}, time.Time{}, time.Time{}, err
	}

	if endOfDay <= startOfDay {
		return time.Time{}, time.Time{}, time.Time{}, ErrInvalidTimeRange
	}

	startsAt = dayStart.Add(startOfDay - c.offset)
	endsAt = dayStart.Add(endOfDay - c.offset)
	bookedOn = startsAt.Truncate(day)

	return bookedOn, startsAt, endsAt, nil
}

// ToDisplay converts storage values back into the local (date, start,
// end) triple. Display values are derived from the instants alone, so
// ToDisplay(ToStorage(d, s, e)) always reproduces (d, s, e), including
// when the offset rolled the storage date.
func (c Converter) ToDisplay(startsAt, endsAt time.Time) (date, start, end string) {
	localStart := startsAt.UTC().Add(c.offset)
	localEnd := endsAt.UTC().Add(c.offset)

	return localStart.Format(dateLayout),
		localStart.Format(timeLayout),
		localEnd.Format(timeLayout)
}

// LocalNow maps an instant to the local wall clock.
func (c Converter) LocalNow(now time.Time) time.Time {
	return now.UTC().Add(c.offset)
}

// CheckTiming rejects slots that lie in the past: a date before today,
// or a start earlier than the current time on today's date. nowLocal
// must come from LocalNow so the comparison happens in local wall time.
func (c Converter) CheckTiming(nowLocal time.Time, date, start string) error {
	dayStart, err := parseDate(date)
	if err != nil {
		return err
	}
	startOfDay, err := parseTimeOfDay(start)
	if err != nil {
		return err
	}

	today := nowLocal.Truncate(day)

	if dayStart.Before(today) {
		return ErrPastDate
	}
	if dayStart.Equal(today) && startOfDay < nowLocal.Sub(today) {
		return ErrPastTime
	}
	return nil
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) share at least one instant. Touching endpoints do not
// overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

func parseDate(date string) (time.Time, error) {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return time.Time{}, apperror.Wrap(err, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
	}
	return t, nil
}

func parseTimeOfDay(s string) (time.Duration, error) {
	for _, layout := range timeOfDayLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Duration(t.Hour())*time.Hour +
				time.Duration(t.Minute())*time.Minute +
				time.Duration(t.Second())*time.Second, nil
		}
	}
	return 0, apperror.New(http.StatusBadRequest, "invalid time of day, expected HH:MM:SS")
}
