package dto

// CatalogResponse lists the catalog as short display rows: name, section,
// title, meeting string.
type CatalogResponse struct {
	Courses [][]string `json:"courses"`
}

// CourseDetail is the full projection of one catalog course.
type CourseDetail struct {
	Name          string `json:"name"`
	Title         string `json:"title"`
	Section       string `json:"section"`
	Credits       int    `json:"credits"`
	InstructorID  string `json:"instructorId"`
	MeetingDays   string `json:"meetingDays"`
	StartTime     int    `json:"startTime"`
	EndTime       int    `json:"endTime"`
	MeetingString string `json:"meetingString"`
}
