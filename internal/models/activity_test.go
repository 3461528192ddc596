package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/campusware/planner-api/pkg/errors"
)

func mustCourse(t *testing.T, name, days string, start, end int) *Course {
	t.Helper()
	c, err := NewCourse(name, "Software Development Fundamentals", "001", 3, "sesmith5", days, start, end)
	require.NoError(t, err)
	return c
}

func TestNewMeetingValid(t *testing.T) {
	tests := []struct {
		name  string
		days  string
		start int
		end   int
	}{
		{"single day", "M", 1330, 1445},
		{"two days", "MW", 1330, 1445},
		{"all weekdays", "MTWHF", 800, 915},
		{"zero-length window", "T", 1200, 1200},
		{"earliest", "F", 0, 0},
		{"latest", "F", 2359, 2359},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := newMeeting(tt.days, tt.start, tt.end, courseDayAlphabet, true)
			require.NoError(t, err)
			assert.Equal(t, tt.days, m.MeetingDays())
			assert.Equal(t, tt.start, m.StartTime())
			assert.Equal(t, tt.end, m.EndTime())
		})
	}
}

func TestNewMeetingInvalid(t *testing.T) {
	tests := []struct {
		name  string
		days  string
		start int
		end   int
	}{
		{"empty days", "", 1330, 1445},
		{"repeated day", "MM", 1330, 1445},
		{"repeated day apart", "MWM", 1330, 1445},
		{"character outside alphabet", "MX", 1330, 1445},
		{"saturday not allowed for courses", "MS", 1330, 1445},
		{"start after end", "MW", 1445, 1330},
		{"start hour too large", "MW", 2400, 2430},
		{"start minute too large", "MW", 1360, 1445},
		{"end minute too large", "MW", 1330, 1465},
		{"negative start", "MW", -100, 1445},
		{"arranged with start time", "A", 1330, 0},
		{"arranged with end time", "A", 0, 1445},
		{"arranged mixed with days", "MA", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newMeeting(tt.days, tt.start, tt.end, courseDayAlphabet, true)
			assert.ErrorIs(t, err, appErrors.ErrInvalidMeetingTime)
		})
	}
}

func TestNewMeetingArrangedSentinelDisallowed(t *testing.T) {
	_, err := newMeeting(ArrangedDays, 0, 0, eventDayAlphabet, false)
	assert.ErrorIs(t, err, appErrors.ErrInvalidMeetingTime)
}

func TestMeetingString(t *testing.T) {
	tests := []struct {
		name  string
		days  string
		start int
		end   int
		want  string
	}{
		{"afternoon", "MW", 1330, 1445, "MW 1:30PM-2:45PM"},
		{"morning", "TH", 900, 1015, "TH 9:00AM-10:15AM"},
		{"noon start", "F", 1200, 1300, "F 12:00PM-1:00PM"},
		{"midnight", "M", 0, 30, "M 12:00AM-12:30AM"},
		{"crosses noon", "W", 1135, 1250, "W 11:35AM-12:50PM"},
		{"late evening", "T", 2100, 2359, "T 9:00PM-11:59PM"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := newMeeting(tt.days, tt.start, tt.end, courseDayAlphabet, true)
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.MeetingString())
		})
	}
}

func TestMeetingStringArranged(t *testing.T) {
	m, err := newMeeting(ArrangedDays, 0, 0, courseDayAlphabet, true)
	require.NoError(t, err)
	assert.Equal(t, "Arranged", m.MeetingString())
}

func TestCheckConflict(t *testing.T) {
	tests := []struct {
		name     string
		a        Activity
		b        Activity
		conflict bool
	}{
		{
			name:     "disjoint days same time",
			a:        mustCourse(t, "CSC 216", "MW", 1330, 1445),
			b:        mustCourse(t, "CSC 226", "TH", 1330, 1445),
			conflict: false,
		},
		{
			name:     "shared day same time",
			a:        mustCourse(t, "CSC 216", "MW", 1330, 1445),
			b:        mustCourse(t, "CSC 226", "M", 1330, 1445),
			conflict: true,
		},
		{
			name:     "identical interval",
			a:        mustCourse(t, "CSC 216", "MW", 1440, 1445),
			b:        mustCourse(t, "CSC 226", "MW", 1440, 1445),
			conflict: true,
		},
		{
			name:     "boundary minute overlap",
			a:        mustCourse(t, "CSC 216", "MF", 1430, 1500),
			b:        mustCourse(t, "CSC 226", "MT", 1300, 1445),
			conflict: true,
		},
		{
			name:     "single shared boundary minute",
			a:        mustCourse(t, "CSC 216", "M", 1300, 1400),
			b:        mustCourse(t, "CSC 226", "M", 1400, 1500),
			conflict: true,
		},
		{
			name:     "adjacent but disjoint times",
			a:        mustCourse(t, "CSC 216", "M", 1300, 1400),
			b:        mustCourse(t, "CSC 226", "M", 1401, 1500),
			conflict: false,
		},
		{
			name:     "containment",
			a:        mustCourse(t, "CSC 216", "M", 1000, 1700),
			b:        mustCourse(t, "CSC 226", "M", 1200, 1300),
			conflict: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckConflict(tt.a, tt.b)
			mirrored := CheckConflict(tt.b, tt.a)
			if tt.conflict {
				assert.ErrorIs(t, err, appErrors.ErrScheduleConflict)
				assert.ErrorIs(t, mirrored, appErrors.ErrScheduleConflict)
			} else {
				assert.NoError(t, err)
				assert.NoError(t, mirrored)
			}
		})
	}
}

func TestCheckConflictArrangedNeverConflicts(t *testing.T) {
	arranged, err := NewArrangedCourse("CSC 216", "Software Development Fundamentals", "001", 3, "sesmith5")
	require.NoError(t, err)

	fixed := mustCourse(t, "CSC 226", "MTWHF", 0, 2359)

	assert.NoError(t, CheckConflict(arranged, fixed))
	assert.NoError(t, CheckConflict(fixed, arranged))

	other, err := NewArrangedCourse("CSC 316", "Data Structures", "002", 3, "jtking")
	require.NoError(t, err)
	assert.NoError(t, CheckConflict(arranged, other))
}

func TestScheduleConflictDefaultMessage(t *testing.T) {
	a := mustCourse(t, "CSC 216", "M", 1330, 1445)
	b := mustCourse(t, "CSC 226", "M", 1330, 1445)

	err := CheckConflict(a, b)
	require.Error(t, err)

	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Schedule conflict.", appErr.Message)
}
