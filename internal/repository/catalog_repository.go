package repository

import (
	"go.uber.org/zap"

	"github.com/campusware/planner-api/internal/models"
	"github.com/campusware/planner-api/internal/records"
	appErrors "github.com/campusware/planner-api/pkg/errors"
)

// CatalogRepository holds the course catalog. The catalog is loaded once at
// construction and is read-only for the repository's lifetime.
type CatalogRepository struct {
	courses []*models.Course
	skipped int
}

// NewCatalogRepository loads the course records at path. A source that
// cannot be read is fatal; no repository results.
func NewCatalogRepository(path string, logger *zap.Logger) (*CatalogRepository, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	courses, skipped, err := records.ReadCourseRecords(path)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrCatalogUnavailable.Code, appErrors.ErrCatalogUnavailable.Status, appErrors.ErrCatalogUnavailable.Message)
	}
	if skipped > 0 {
		logger.Warn("catalog lines skipped",
			zap.String("file", path),
			zap.Int("skipped", skipped),
			zap.Int("loaded", len(courses)))
	}

	return &CatalogRepository{courses: courses, skipped: skipped}, nil
}

// Find returns the course with the exact name and section.
func (r *CatalogRepository) Find(name, section string) (*models.Course, bool) {
	for _, c := range r.courses {
		if c.Name() == name && c.Section() == section {
			return c, true
		}
	}
	return nil, false
}

// List returns the catalog in load order.
func (r *CatalogRepository) List() []*models.Course {
	out := make([]*models.Course, len(r.courses))
	copy(out, r.courses)
	return out
}

// Size returns the number of catalog courses.
func (r *CatalogRepository) Size() int {
	return len(r.courses)
}

// SkippedLines returns how many malformed lines the loader dropped.
func (r *CatalogRepository) SkippedLines() int {
	return r.skipped
}
