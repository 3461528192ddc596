// Package records converts between the delimited course-record text format
// and the activity model. Lines are plain comma-separated fields with no
// quoting or escaping, which rules out encoding/csv's quote handling.
package records

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/campusware/planner-api/internal/models"
)

const fieldSeparator = ","

// Course lines carry name,title,section,credits,instructorId,days and, for
// non-arranged courses, the start/end time pair.
const (
	arrangedFieldCount = 6
	courseFieldCount   = 8
)

// ReadCourseRecords reads every course line from path. Malformed lines are
// skipped, not surfaced per line; the skipped count lets the caller log a
// diagnostic. Courses are deduplicated by (name, section), first wins.
func ReadCourseRecords(path string) ([]*models.Course, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open course records: %w", err)
	}
	defer f.Close()

	var courses []*models.Course
	skipped := 0
	seen := make(map[string]struct{})

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		course, err := ParseCourse(line)
		if err != nil {
			skipped++
			continue
		}
		key := course.Name() + fieldSeparator + course.Section()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		courses = append(courses, course)
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, fmt.Errorf("read course records: %w", err)
	}

	return courses, skipped, nil
}

// ParseCourse builds a Course from a single record line.
func ParseCourse(line string) (*models.Course, error) {
	fields := strings.Split(line, fieldSeparator)
	if len(fields) < arrangedFieldCount {
		return nil, fmt.Errorf("course record needs at least %d fields, got %d", arrangedFieldCount, len(fields))
	}

	name := fields[0]
	title := fields[1]
	section := fields[2]
	credits, err := strconv.Atoi(fields[3])
	if err != nil {
		return nil, fmt.Errorf("parse credits: %w", err)
	}
	instructorID := fields[4]
	days := fields[5]

	if days == models.ArrangedDays {
		if len(fields) != arrangedFieldCount {
			return nil, fmt.Errorf("arranged course record has %d fields, want %d", len(fields), arrangedFieldCount)
		}
		return models.NewArrangedCourse(name, title, section, credits, instructorID)
	}

	if len(fields) != courseFieldCount {
		return nil, fmt.Errorf("course record has %d fields, want %d", len(fields), courseFieldCount)
	}
	start, err := strconv.Atoi(fields[6])
	if err != nil {
		return nil, fmt.Errorf("parse start time: %w", err)
	}
	end, err := strconv.Atoi(fields[7])
	if err != nil {
		return nil, fmt.Errorf("parse end time: %w", err)
	}

	return models.NewCourse(name, title, section, credits, instructorID, days, start, end)
}

// WriteActivityRecords writes the schedule, one activity per line, to path.
func WriteActivityRecords(path string, activities []models.Activity) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create activity records: %w", err)
	}

	w := bufio.NewWriter(f)
	for _, a := range activities {
		if _, err := w.WriteString(ActivityRecord(a) + "\n"); err != nil {
			f.Close()
			return fmt.Errorf("write activity record: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("flush activity records: %w", err)
	}
	return f.Close()
}

// ActivityRecord serializes one activity as a record line.
func ActivityRecord(a models.Activity) string {
	switch v := a.(type) {
	case *models.Course:
		return CourseRecord(v)
	case *models.Event:
		return EventRecord(v)
	default:
		return ""
	}
}

// CourseRecord serializes a course. Arranged courses omit the time pair.
func CourseRecord(c *models.Course) string {
	fields := []string{c.Name(), c.Title(), c.Section(), strconv.Itoa(c.Credits()), c.InstructorID(), c.MeetingDays()}
	if c.MeetingDays() != models.ArrangedDays {
		fields = append(fields, strconv.Itoa(c.StartTime()), strconv.Itoa(c.EndTime()))
	}
	return strings.Join(fields, fieldSeparator)
}

// EventRecord serializes an event.
func EventRecord(e *models.Event) string {
	fields := []string{e.Title(), e.MeetingDays(), strconv.Itoa(e.StartTime()), strconv.Itoa(e.EndTime()), e.Details()}
	return strings.Join(fields, fieldSeparator)
}
