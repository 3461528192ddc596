package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/campusware/planner-api/pkg/errors"
)

const (
	validName         = "CSC 216"
	validTitle        = "Software Development Fundamentals"
	validSection      = "001"
	validCredits      = 3
	validInstructorID = "sesmith5"
)

func TestNewCourseValid(t *testing.T) {
	c, err := NewCourse(validName, validTitle, validSection, validCredits, validInstructorID, "MW", 1330, 1445)
	require.NoError(t, err)

	assert.Equal(t, validName, c.Name())
	assert.Equal(t, validTitle, c.Title())
	assert.Equal(t, validSection, c.Section())
	assert.Equal(t, validCredits, c.Credits())
	assert.Equal(t, validInstructorID, c.InstructorID())
	assert.Equal(t, "MW", c.MeetingDays())
	assert.Equal(t, 1330, c.StartTime())
	assert.Equal(t, 1445, c.EndTime())
}

func TestNewArrangedCourse(t *testing.T) {
	c, err := NewArrangedCourse(validName, validTitle, validSection, validCredits, validInstructorID)
	require.NoError(t, err)

	assert.Equal(t, ArrangedDays, c.MeetingDays())
	assert.Zero(t, c.StartTime())
	assert.Zero(t, c.EndTime())
	assert.Equal(t, "Arranged", c.MeetingString())
}

func TestNewCourseInvalidName(t *testing.T) {
	names := []string{
		"",
		"C 16",       // too short
		"CSCCS 216",  // too long
		"CSC216",     // no space
		"CSC 21",     // two digits
		"CSC 2165",   // four trailing digits
		" CSC216",    // leading space, zero letters
		"CSC 21A",    // letter among digits
		"C5C 216",    // digit among letters
		"CSCCC 21",   // five letters
	}
	for _, name := range names {
		t.Run("name "+name, func(t *testing.T) {
			_, err := NewCourse(name, validTitle, validSection, validCredits, validInstructorID, "MW", 1330, 1445)
			assert.ErrorIs(t, err, appErrors.ErrInvalidCourseName)
		})
	}
}

func TestNewCourseInvalidFields(t *testing.T) {
	t.Run("empty title", func(t *testing.T) {
		_, err := NewCourse(validName, "", validSection, validCredits, validInstructorID, "MW", 1330, 1445)
		assert.ErrorIs(t, err, appErrors.ErrInvalidTitle)
	})

	for _, section := range []string{"", "01", "0011", "0a1"} {
		t.Run("section "+section, func(t *testing.T) {
			_, err := NewCourse(validName, validTitle, section, validCredits, validInstructorID, "MW", 1330, 1445)
			assert.ErrorIs(t, err, appErrors.ErrInvalidSection)
		})
	}

	for _, credits := range []int{0, -1, 6} {
		t.Run("credits out of range", func(t *testing.T) {
			_, err := NewCourse(validName, validTitle, validSection, credits, validInstructorID, "MW", 1330, 1445)
			assert.ErrorIs(t, err, appErrors.ErrInvalidCredits)
		})
	}

	t.Run("empty instructor", func(t *testing.T) {
		_, err := NewCourse(validName, validTitle, validSection, validCredits, "", "MW", 1330, 1445)
		assert.ErrorIs(t, err, appErrors.ErrInvalidInstructorID)
	})

	t.Run("invalid meeting days", func(t *testing.T) {
		_, err := NewCourse(validName, validTitle, validSection, validCredits, validInstructorID, "MU", 1330, 1445)
		assert.ErrorIs(t, err, appErrors.ErrInvalidMeetingTime)
	})
}

func TestCourseIsDuplicate(t *testing.T) {
	a, err := NewCourse(validName, validTitle, "001", 3, validInstructorID, "MW", 1330, 1445)
	require.NoError(t, err)

	sameNameOtherSection, err := NewCourse(validName, validTitle, "002", 4, "jtking", "TH", 900, 1015)
	require.NoError(t, err)
	assert.True(t, a.IsDuplicate(sameNameOtherSection))

	otherCourse, err := NewCourse("CSC 226", "Discrete Mathematics", "001", 3, validInstructorID, "MW", 1330, 1445)
	require.NoError(t, err)
	assert.False(t, a.IsDuplicate(otherCourse))

	// An event with a matching title is never a duplicate of a course.
	event, err := NewEvent(validTitle, "MW", 1330, 1445, "")
	require.NoError(t, err)
	assert.False(t, a.IsDuplicate(event))
}

func TestCourseEqual(t *testing.T) {
	a, err := NewCourse(validName, validTitle, validSection, validCredits, validInstructorID, "MW", 1330, 1445)
	require.NoError(t, err)
	b, err := NewCourse(validName, validTitle, validSection, validCredits, validInstructorID, "MW", 1330, 1445)
	require.NoError(t, err)
	assert.True(t, a.Equal(b))

	c, err := NewCourse(validName, validTitle, validSection, 4, validInstructorID, "MW", 1330, 1445)
	require.NoError(t, err)
	assert.False(t, a.Equal(c))
}

func TestCourseDisplays(t *testing.T) {
	c, err := NewCourse(validName, validTitle, validSection, validCredits, validInstructorID, "MW", 1330, 1445)
	require.NoError(t, err)

	assert.Equal(t,
		[]string{validName, validSection, validTitle, "MW 1:30PM-2:45PM"},
		c.ShortDisplay())
	assert.Equal(t,
		[]string{validName, validSection, validTitle, "3", validInstructorID, "MW 1:30PM-2:45PM", ""},
		c.LongDisplay())
}
