package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campusware/planner-api/internal/dto"
	"github.com/campusware/planner-api/internal/service"
	appErrors "github.com/campusware/planner-api/pkg/errors"
	"github.com/campusware/planner-api/pkg/response"
)

// ScheduleHandler manages the student's schedule endpoints.
type ScheduleHandler struct {
	service *service.PlannerService
}

// NewScheduleHandler constructs handler.
func NewScheduleHandler(svc *service.PlannerService) *ScheduleHandler {
	return &ScheduleHandler{service: svc}
}

// Get returns the schedule title and short display rows.
func (h *ScheduleHandler) Get(c *gin.Context) {
	response.JSON(c, http.StatusOK, dto.ScheduleResponse{
		Title:      h.service.Title(),
		Activities: h.service.ScheduledActivities(),
	})
}

// GetFull returns the schedule title and long display rows.
func (h *ScheduleHandler) GetFull(c *gin.Context) {
	response.JSON(c, http.StatusOK, dto.FullScheduleResponse{
		Title:      h.service.Title(),
		Activities: h.service.FullScheduledActivities(),
	})
}

// AddCourse adds a catalog course to the schedule.
func (h *ScheduleHandler) AddCourse(c *gin.Context) {
	var req dto.AddCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	added, err := h.service.AddCourse(req.Name, req.Section)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !added {
		response.Error(c, appErrors.ErrCourseNotInCatalog)
		return
	}

	course, err := h.service.CourseFromCatalog(req.Name, req.Section)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.AddCourseResponse{
		Name:    course.Name(),
		Section: course.Section(),
		Row:     course.ShortDisplay(),
	})
}

// AddEvent adds an ad-hoc event to the schedule.
func (h *ScheduleHandler) AddEvent(c *gin.Context) {
	var req service.AddEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	if err := h.service.AddEvent(req); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{"title": req.Title})
}

// Remove deletes the schedule entry at the given index.
func (h *ScheduleHandler) Remove(c *gin.Context) {
	idx, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "index must be an integer"))
		return
	}

	if !h.service.RemoveActivity(idx) {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "no activity at index "+strconv.Itoa(idx)))
		return
	}
	response.NoContent(c)
}

// Reset empties the schedule and restores the default title.
func (h *ScheduleHandler) Reset(c *gin.Context) {
	h.service.Reset()
	response.NoContent(c)
}

// UpdateTitle renames the schedule.
func (h *ScheduleHandler) UpdateTitle(c *gin.Context) {
	var req dto.UpdateTitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	if err := h.service.SetTitle(req.Title); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"title": h.service.Title()})
}

// Export writes the schedule to a record file in the export directory.
func (h *ScheduleHandler) Export(c *gin.Context) {
	var req service.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	path, err := h.service.Export(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.ExportResponse{Path: path})
}

// Download streams the schedule as a CSV or PDF attachment.
func (h *ScheduleHandler) Download(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")

	body, contentType, err := h.service.Render(format)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="schedule.`+format+`"`)
	c.Data(http.StatusOK, contentType, body)
}
