package dto

// AddCourseRequest identifies a catalog course by its exact name and section.
type AddCourseRequest struct {
	Name    string `json:"name" binding:"required"`
	Section string `json:"section" binding:"required"`
}

// AddCourseResponse echoes the added course's short display row.
type AddCourseResponse struct {
	Name    string   `json:"name"`
	Section string   `json:"section"`
	Row     []string `json:"row"`
}

// UpdateTitleRequest carries the new schedule title. A request without a
// title field is rejected; an empty title is permitted, so the field is a
// pointer rather than a string with a required tag.
type UpdateTitleRequest struct {
	Title *string `json:"title"`
}

// ScheduleResponse lists the schedule as short display rows.
type ScheduleResponse struct {
	Title      string     `json:"title"`
	Activities [][]string `json:"activities"`
}

// FullScheduleResponse lists the schedule as long display rows.
type FullScheduleResponse struct {
	Title      string     `json:"title"`
	Activities [][]string `json:"activities"`
}

// ExportResponse reports where the schedule was written.
type ExportResponse struct {
	Path string `json:"path"`
}
