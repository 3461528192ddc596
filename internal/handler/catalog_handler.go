package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusware/planner-api/internal/dto"
	"github.com/campusware/planner-api/internal/models"
	"github.com/campusware/planner-api/internal/service"
	"github.com/campusware/planner-api/pkg/response"
)

// CatalogHandler serves the read-only course catalog.
type CatalogHandler struct {
	service *service.PlannerService
}

// NewCatalogHandler constructs handler.
func NewCatalogHandler(svc *service.PlannerService) *CatalogHandler {
	return &CatalogHandler{service: svc}
}

// List returns the catalog as short display rows.
func (h *CatalogHandler) List(c *gin.Context) {
	rows := h.service.CourseCatalog()
	response.JSON(c, http.StatusOK, dto.CatalogResponse{Courses: rows})
}

// GetCourse returns the full detail of one catalog course, looked up by
// exact name and section query parameters.
func (h *CatalogHandler) GetCourse(c *gin.Context) {
	name := c.Query("name")
	section := c.Query("section")

	course, err := h.service.CourseFromCatalog(name, section)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, courseDetail(course))
}

func courseDetail(course *models.Course) dto.CourseDetail {
	return dto.CourseDetail{
		Name:          course.Name(),
		Title:         course.Title(),
		Section:       course.Section(),
		Credits:       course.Credits(),
		InstructorID:  course.InstructorID(),
		MeetingDays:   course.MeetingDays(),
		StartTime:     course.StartTime(),
		EndTime:       course.EndTime(),
		MeetingString: course.MeetingString(),
	}
}
