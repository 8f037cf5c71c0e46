package models

// DateTimeZone is a wall-clock datetime paired with its IANA/Windows zone
// label, as used by the calendar collaborator.
type DateTimeZone struct {
	DateTime string `json:"dateTime"`
	TimeZone string `json:"timeZone"`
}

// EmailAddress is a display name plus address pair.
type EmailAddress struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// Organizer wraps the organizer's email address in the collaborator's shape.
type Organizer struct {
	EmailAddress EmailAddress `json:"emailAddress"`
}

// Location is a free-text place attached to an event.
type Location struct {
	DisplayName string `json:"displayName"`
}

// CalendarEvent is one event as returned by the calendar collaborator.
type CalendarEvent struct {
	ID          string       `json:"id"`
	Subject     string       `json:"subject"`
	Start       DateTimeZone `json:"start"`
	End         DateTimeZone `json:"end"`
	Organizer   Organizer    `json:"organizer"`
	Location    *Location    `json:"location,omitempty"`
	BodyPreview string       `json:"bodyPreview"`
	WebLink     string       `json:"webLink,omitempty"`
	IsAllDay    bool         `json:"isAllDay"`
}

// EventsEnvelope is the collaborator's response wrapper.
type EventsEnvelope struct {
	Value []CalendarEvent `json:"value"`
}

// EventQuery narrows a calendar range request. Start and End are RFC3339;
// zero values are omitted from the request.
type EventQuery struct {
	Start      string
	End        string
	CalendarID string
	TimeZone   string
	Top        int
}

// CreateEventRequest carries the user-entered fields for a new calendar
// event. Attendees are bare email addresses.
type CreateEventRequest struct {
	Subject     string       `json:"subject"`
	Start       DateTimeZone `json:"start"`
	End         DateTimeZone `json:"end"`
	Description string       `json:"description,omitempty"`
	Location    string       `json:"location,omitempty"`
	Attendees   []string     `json:"attendees,omitempty"`
	IsAllDay    bool         `json:"isAllDay,omitempty"`
}

// EventBody is the HTML body wrapper of an outbound event.
type EventBody struct {
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}

// Attendee is one invitee in the outbound event shape.
type Attendee struct {
	EmailAddress EmailAddress `json:"emailAddress"`
	Type         string       `json:"type"`
}

// GraphEvent is the Microsoft-Graph-style wire body the dispatcher webhook
// expects for event creation.
type GraphEvent struct {
	Subject               string       `json:"subject"`
	Body                  *EventBody   `json:"body,omitempty"`
	Start                 DateTimeZone `json:"start"`
	End                   DateTimeZone `json:"end"`
	Location              *Location    `json:"location,omitempty"`
	Attendees             []Attendee   `json:"attendees,omitempty"`
	IsAllDay              bool         `json:"isAllDay,omitempty"`
	AllowNewTimeProposals bool         `json:"allowNewTimeProposals"`
	IsOnlineMeeting       bool         `json:"isOnlineMeeting"`
	OnlineMeetingProvider string       `json:"onlineMeetingProvider,omitempty"`
}

// CreateEventResponse reports the outcome of an event-creation dispatch.
type CreateEventResponse struct {
	Success bool   `json:"success"`
	EventID string `json:"eventId,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}
