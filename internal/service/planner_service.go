package service

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campusware/planner-api/internal/models"
	"github.com/campusware/planner-api/internal/records"
	appErrors "github.com/campusware/planner-api/pkg/errors"
	"github.com/campusware/planner-api/pkg/export"
)

// DefaultScheduleTitle is the title a fresh or reset schedule carries.
const DefaultScheduleTitle = "My Schedule"

type catalogStore interface {
	Find(name, section string) (*models.Course, bool)
	List() []*models.Course
	Size() int
}

// AddEventRequest describes the payload for adding an ad-hoc event.
type AddEventRequest struct {
	Title       string `json:"title"`
	MeetingDays string `json:"meetingDays"`
	StartTime   int    `json:"startTime"`
	EndTime     int    `json:"endTime"`
	Details     string `json:"details"`
}

// ExportRequest names the file the schedule is written to. The name must be
// a bare file name; path separators would escape the export directory.
type ExportRequest struct {
	Filename string `json:"filename" validate:"required,excludesall=/\\"`
}

// PlannerService owns the read-only catalog and the student's mutable
// schedule. Every insertion runs the duplicate and conflict checks against
// the current schedule. The mutex serialises the HTTP surface's concurrent
// requests; the schedule itself stays a single logical actor's state.
type PlannerService struct {
	mu       sync.Mutex
	catalog  catalogStore
	schedule []models.Activity
	title    string

	exportDir string
	validator *validator.Validate
	logger    *zap.Logger
	metrics   *MetricsService
	csv       *export.CSVExporter
	pdf       *export.PDFExporter
}

// NewPlannerService builds a planner over the loaded catalog. metrics may be
// nil.
func NewPlannerService(catalog catalogStore, exportDir string, validate *validator.Validate, logger *zap.Logger, metrics *MetricsService) *PlannerService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &PlannerService{
		catalog:   catalog,
		schedule:  []models.Activity{},
		title:     DefaultScheduleTitle,
		exportDir: exportDir,
		validator: validate,
		logger:    logger,
		metrics:   metrics,
		csv:       export.NewCSVExporter(),
		pdf:       export.NewPDFExporter(),
	}
	s.observeSizes()
	return s
}

// AddCourse looks the course up by exact name and section and appends it to
// the schedule. A course absent from the catalog is not an error: the first
// return value is false and the schedule is unchanged.
func (s *PlannerService) AddCourse(name, section string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	course, ok := s.catalog.Find(name, section)
	if !ok {
		return false, nil
	}

	for _, existing := range s.schedule {
		if course.IsDuplicate(existing) {
			return false, appErrors.Clone(appErrors.ErrDuplicateActivity, "You are already enrolled in "+course.Name())
		}
		if err := models.CheckConflict(course, existing); err != nil {
			return false, appErrors.Clone(appErrors.ErrScheduleConflict, "The course cannot be added due to a conflict.")
		}
	}

	s.schedule = append(s.schedule, course)
	s.observeSizes()
	s.logger.Info("course added to schedule",
		zap.String("name", course.Name()),
		zap.String("section", course.Section()),
		zap.Int("schedule_size", len(s.schedule)))
	return true, nil
}

// AddEvent constructs the event, propagating any field-validation failure,
// and appends it under the same duplicate and conflict rules as courses.
func (s *PlannerService) AddEvent(req AddEventRequest) error {
	event, err := models.NewEvent(req.Title, req.MeetingDays, req.StartTime, req.EndTime, req.Details)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.schedule {
		if event.IsDuplicate(existing) {
			return appErrors.Clone(appErrors.ErrDuplicateActivity, "You have already created an event called "+event.Title())
		}
		if err := models.CheckConflict(event, existing); err != nil {
			return appErrors.Clone(appErrors.ErrScheduleConflict, "The event cannot be added due to a conflict.")
		}
	}

	s.schedule = append(s.schedule, event)
	s.observeSizes()
	s.logger.Info("event added to schedule",
		zap.String("title", event.Title()),
		zap.Int("schedule_size", len(s.schedule)))
	return nil
}

// RemoveActivity removes the schedule entry at idx. An out-of-range index
// leaves the schedule unchanged and returns false.
func (s *PlannerService) RemoveActivity(idx int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx < 0 || idx >= len(s.schedule) {
		return false
	}
	s.schedule = append(s.schedule[:idx], s.schedule[idx+1:]...)
	s.observeSizes()
	return true
}

// Reset empties the schedule and restores the default title. It cannot fail.
func (s *PlannerService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.schedule = []models.Activity{}
	s.title = DefaultScheduleTitle
	s.observeSizes()
}

// CourseFromCatalog returns the catalog course with the exact name and
// section.
func (s *PlannerService) CourseFromCatalog(name, section string) (*models.Course, error) {
	course, ok := s.catalog.Find(name, section)
	if !ok {
		return nil, appErrors.ErrCourseNotInCatalog
	}
	return course, nil
}

// CourseCatalog returns one short display row per catalog course.
func (s *PlannerService) CourseCatalog() [][]string {
	courses := s.catalog.List()
	rows := make([][]string, 0, len(courses))
	for _, c := range courses {
		rows = append(rows, c.ShortDisplay())
	}
	return rows
}

// ScheduledActivities returns one short display row per schedule entry.
func (s *PlannerService) ScheduledActivities() [][]string {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := make([][]string, 0, len(s.schedule))
	for _, a := range s.schedule {
		rows = append(rows, a.ShortDisplay())
	}
	return rows
}

// FullScheduledActivities returns one long display row per schedule entry.
func (s *PlannerService) FullScheduledActivities() [][]string {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := make([][]string, 0, len(s.schedule))
	for _, a := range s.schedule {
		rows = append(rows, a.LongDisplay())
	}
	return rows
}

// Title returns the schedule title.
func (s *PlannerService) Title() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.title
}

// SetTitle updates the schedule title. A missing title is rejected; an empty
// one is permitted.
func (s *PlannerService) SetTitle(title *string) error {
	if title == nil {
		return appErrors.ErrInvalidScheduleTitle
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.title = *title
	return nil
}

// Export writes the schedule in the delimited record format to the export
// directory. The schedule is unchanged whether or not the write succeeds.
func (s *PlannerService) Export(req ExportRequest) (string, error) {
	if err := s.validator.Struct(req); err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid export payload")
	}

	if err := os.MkdirAll(s.exportDir, 0o755); err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrExportFailure.Code, appErrors.ErrExportFailure.Status, appErrors.ErrExportFailure.Message)
	}

	s.mu.Lock()
	schedule := make([]models.Activity, len(s.schedule))
	copy(schedule, s.schedule)
	s.mu.Unlock()

	path := filepath.Join(s.exportDir, req.Filename)
	if err := records.WriteActivityRecords(path, schedule); err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrExportFailure.Code, appErrors.ErrExportFailure.Status, appErrors.ErrExportFailure.Message)
	}

	s.logger.Info("schedule exported", zap.String("path", path), zap.Int("activities", len(schedule)))
	return path, nil
}

// Render produces a CSV or PDF download of the full schedule.
func (s *PlannerService) Render(format string) ([]byte, string, error) {
	dataset := export.Dataset{
		Headers: []string{"Name", "Section", "Title", "Credits", "Instructor", "Meeting", "Details"},
		Rows:    s.FullScheduledActivities(),
	}

	switch format {
	case "csv", "":
		body, err := s.csv.Render(dataset)
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrExportFailure.Code, appErrors.ErrExportFailure.Status, appErrors.ErrExportFailure.Message)
		}
		return body, "text/csv", nil
	case "pdf":
		body, err := s.pdf.Render(dataset, s.Title())
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrExportFailure.Code, appErrors.ErrExportFailure.Status, appErrors.ErrExportFailure.Message)
		}
		return body, "application/pdf", nil
	default:
		return nil, "", appErrors.Clone(appErrors.ErrValidation, "unsupported format: "+format)
	}
}

// ScheduleSize returns the number of scheduled activities.
func (s *PlannerService) ScheduleSize() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.schedule)
}

// observeSizes publishes catalog and schedule gauges. Callers hold the mutex.
func (s *PlannerService) observeSizes() {
	if s.metrics == nil {
		return
	}
	s.metrics.SetScheduleSize(len(s.schedule))
	s.metrics.SetCatalogSize(s.catalog.Size())
}
