package models

// eventDayAlphabet includes the weekend: U is Sunday, S is Saturday.
// Events cannot be arranged; they always carry a concrete meeting window.
const eventDayAlphabet = "UMTWHFS"

// Event is an ad-hoc schedule entry that is not part of the course catalog.
// Two Events are duplicates when they share a title.
type Event struct {
	title   string
	details string
	meeting
}

// NewEvent validates every field and builds an Event. Details is free text
// and may be empty.
func NewEvent(title, meetingDays string, startTime, endTime int, details string) (*Event, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}

	m, err := newMeeting(meetingDays, startTime, endTime, eventDayAlphabet, false)
	if err != nil {
		return nil, err
	}

	return &Event{title: title, details: details, meeting: m}, nil
}

// Title returns the event title.
func (e *Event) Title() string {
	return e.title
}

// Details returns the free-text event details.
func (e *Event) Details() string {
	return e.details
}

// IsDuplicate reports whether other is an Event with the same title.
func (e *Event) IsDuplicate(other Activity) bool {
	o, ok := other.(*Event)
	return ok && e.title == o.title
}

// Equal reports full-field equality with another activity of the same variant.
func (e *Event) Equal(other Activity) bool {
	o, ok := other.(*Event)
	return ok && *e == *o
}

// ShortDisplay returns the schedule row. Events have no name or section, so
// the first two columns are empty.
func (e *Event) ShortDisplay() []string {
	return []string{"", "", e.title, e.MeetingString()}
}

// LongDisplay returns the full schedule row with the details in the final
// column.
func (e *Event) LongDisplay() []string {
	return []string{"", "", e.title, "", "", e.MeetingString(), e.details}
}
