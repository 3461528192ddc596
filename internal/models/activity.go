package models

import (
	"fmt"
	"strings"

	appErrors "github.com/campusware/planner-api/pkg/errors"
)

// ArrangedDays is the sentinel meeting-days value for activities with no
// fixed day or time. Arranged activities carry zero start and end times.
const ArrangedDays = "A"

const (
	upperHour   = 23
	upperMinute = 59
	noonTime    = 1200
)

// Activity is any schedulable item: a catalog Course or an ad-hoc Event.
// Both variants share the validated meeting triple and the conflict rules;
// duplicate identity and the display projections are variant specific.
type Activity interface {
	Title() string
	MeetingDays() string
	StartTime() int
	EndTime() int
	MeetingString() string
	// IsDuplicate reports whether other shares this variant's identity key.
	// Activities of different variants are never duplicates of each other.
	IsDuplicate(other Activity) bool
	// ShortDisplay returns the four-column row used for catalog and
	// schedule listings.
	ShortDisplay() []string
	// LongDisplay returns the seven-column row used for the full schedule.
	LongDisplay() []string
}

// meeting is the validated day/time triple embedded by both variants.
// It is only ever constructed through newMeeting, so a meeting value is
// always internally consistent.
type meeting struct {
	days  string
	start int
	end   int
}

// newMeeting validates and builds a meeting. alphabet lists the characters
// the variant permits; arranged controls whether the "A" sentinel is legal.
// All checks pass or the zero value is returned with ErrInvalidMeetingTime.
func newMeeting(days string, start, end int, alphabet string, arranged bool) (meeting, error) {
	if days == "" {
		return meeting{}, appErrors.ErrInvalidMeetingTime
	}

	if days == ArrangedDays {
		if !arranged || start != 0 || end != 0 {
			return meeting{}, appErrors.ErrInvalidMeetingTime
		}
		return meeting{days: days, start: 0, end: 0}, nil
	}

	for _, c := range days {
		if !strings.ContainsRune(alphabet, c) {
			return meeting{}, appErrors.ErrInvalidMeetingTime
		}
		if strings.Count(days, string(c)) > 1 {
			return meeting{}, appErrors.ErrInvalidMeetingTime
		}
	}

	if start > end {
		return meeting{}, appErrors.ErrInvalidMeetingTime
	}
	for _, t := range []int{start, end} {
		hour := t / 100
		minute := t % 100
		if hour < 0 || hour > upperHour || minute < 0 || minute > upperMinute {
			return meeting{}, appErrors.ErrInvalidMeetingTime
		}
	}

	return meeting{days: days, start: start, end: end}, nil
}

// MeetingDays returns the meeting-days string.
func (m meeting) MeetingDays() string {
	return m.days
}

// StartTime returns the start time in HHMM military encoding.
func (m meeting) StartTime() int {
	return m.start
}

// EndTime returns the end time in HHMM military encoding.
func (m meeting) EndTime() int {
	return m.end
}

// MeetingString renders the meeting window for display: "Arranged" for the
// sentinel, otherwise "<days> <start>-<end>" on a 12-hour clock.
func (m meeting) MeetingString() string {
	if m.days == ArrangedDays {
		return "Arranged"
	}
	return fmt.Sprintf("%s %s-%s", m.days, clockTime(m.start), clockTime(m.end))
}

// clockTime converts HHMM military time to h:mmAM/PM. Hours 0 and 12 both
// display as 12.
func clockTime(t int) string {
	hour := t / 100
	minute := t % 100

	suffix := "AM"
	if t >= noonTime {
		suffix = "PM"
	}
	if hour > 12 {
		hour -= 12
	}
	if hour == 0 {
		hour = 12
	}

	return fmt.Sprintf("%d:%02d%s", hour, minute, suffix)
}

// CheckConflict is the symmetric pairwise conflict test. Two activities
// conflict when their day strings share a character and their time windows
// intersect, boundary minutes included. An arranged activity never conflicts.
func CheckConflict(a, b Activity) error {
	sameTime := !(a.EndTime() < b.StartTime() || a.StartTime() > b.EndTime())

	sameDay := false
	for _, c := range a.MeetingDays() {
		if strings.ContainsRune(b.MeetingDays(), c) {
			sameDay = true
			break
		}
	}
	if a.MeetingDays() == ArrangedDays || b.MeetingDays() == ArrangedDays {
		sameDay = false
	}

	if sameDay && sameTime {
		return appErrors.ErrScheduleConflict
	}
	return nil
}

// validateTitle is shared by both variants.
func validateTitle(title string) error {
	if title == "" {
		return appErrors.ErrInvalidTitle
	}
	return nil
}
