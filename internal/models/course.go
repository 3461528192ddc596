package models

import (
	"strconv"
	"unicode"

	appErrors "github.com/campusware/planner-api/pkg/errors"
)

const (
	minNameLength  = 5
	maxNameLength  = 8
	minLetterCount = 1
	maxLetterCount = 4
	digitCount     = 3
	sectionLength  = 3
	minCredits     = 1
	maxCredits     = 5
)

// courseDayAlphabet lists the weekdays a course may meet on.
const courseDayAlphabet = "MTWHF"

// Course is a catalog offering. Two schedule entries are considered
// duplicate courses when they share a name, regardless of section.
type Course struct {
	name         string
	title        string
	section      string
	credits      int
	instructorID string
	meeting
}

// NewCourse validates every field and builds a Course. It never returns a
// partially populated value.
func NewCourse(name, title, section string, credits int, instructorID, meetingDays string, startTime, endTime int) (*Course, error) {
	if err := validateCourseName(name); err != nil {
		return nil, err
	}
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if err := validateSection(section); err != nil {
		return nil, err
	}
	if credits < minCredits || credits > maxCredits {
		return nil, appErrors.ErrInvalidCredits
	}
	if instructorID == "" {
		return nil, appErrors.ErrInvalidInstructorID
	}

	m, err := newMeeting(meetingDays, startTime, endTime, courseDayAlphabet, true)
	if err != nil {
		return nil, err
	}

	return &Course{
		name:         name,
		title:        title,
		section:      section,
		credits:      credits,
		instructorID: instructorID,
		meeting:      m,
	}, nil
}

// NewArrangedCourse builds a Course with no fixed meeting time.
func NewArrangedCourse(name, title, section string, credits int, instructorID string) (*Course, error) {
	return NewCourse(name, title, section, credits, instructorID, ArrangedDays, 0, 0)
}

// validateCourseName enforces the "DEPT NNN" shape: one to four leading
// letters, a single space, exactly three trailing digits.
func validateCourseName(name string) error {
	if len(name) < minNameLength || len(name) > maxNameLength {
		return appErrors.ErrInvalidCourseName
	}

	letters := 0
	digits := 0
	seenSpace := false
	for _, c := range name {
		if !seenSpace {
			switch {
			case unicode.IsLetter(c):
				letters++
			case c == ' ':
				seenSpace = true
			default:
				return appErrors.ErrInvalidCourseName
			}
		} else {
			if !unicode.IsDigit(c) {
				return appErrors.ErrInvalidCourseName
			}
			digits++
		}
	}

	if letters < minLetterCount || letters > maxLetterCount {
		return appErrors.ErrInvalidCourseName
	}
	if digits != digitCount {
		return appErrors.ErrInvalidCourseName
	}
	return nil
}

func validateSection(section string) error {
	if len(section) != sectionLength {
		return appErrors.ErrInvalidSection
	}
	for _, c := range section {
		if !unicode.IsDigit(c) {
			return appErrors.ErrInvalidSection
		}
	}
	return nil
}

// Name returns the course name.
func (c *Course) Name() string {
	return c.name
}

// Title returns the course title.
func (c *Course) Title() string {
	return c.title
}

// Section returns the three-digit section.
func (c *Course) Section() string {
	return c.section
}

// Credits returns the credit hours.
func (c *Course) Credits() int {
	return c.credits
}

// InstructorID returns the instructor's id.
func (c *Course) InstructorID() string {
	return c.instructorID
}

// IsDuplicate reports whether other is a Course with the same name.
func (c *Course) IsDuplicate(other Activity) bool {
	o, ok := other.(*Course)
	return ok && c.name == o.name
}

// Equal reports full-field equality with another activity of the same variant.
func (c *Course) Equal(other Activity) bool {
	o, ok := other.(*Course)
	return ok && *c == *o
}

// ShortDisplay returns the catalog row: name, section, title, meeting string.
func (c *Course) ShortDisplay() []string {
	return []string{c.name, c.section, c.title, c.MeetingString()}
}

// LongDisplay returns the full schedule row. The trailing column is empty;
// it holds event details for the Event variant.
func (c *Course) LongDisplay() []string {
	return []string{c.name, c.section, c.title, strconv.Itoa(c.credits), c.instructorID, c.MeetingString(), ""}
}
