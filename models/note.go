package models

import "time"

// Note types. Activity notes are system-generated (profile creation, update
// diffs, logged contact actions); manual notes are user-authored free text.
const (
	NoteTypeManual   = "manual"
	NoteTypeActivity = "activity"
)

// SystemAuthor is the author label applied to automated notes.
const SystemAuthor = "System"

// Contact action kinds accepted by the contact-logging endpoint.
const (
	ContactCall     = "call"
	ContactText     = "text"
	ContactFaceTime = "facetime"
	ContactEmail    = "email"
)

// ContactMeta carries the free-form details of a logged contact action:
// the phone number dialed or texted, the email address written to, and the
// text of an SMS.
type ContactMeta struct {
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
	Body  string `json:"body,omitempty"`
}

// Note is an immutable, timestamped journal entry on a client. Once appended
// a note is never mutated; corrections happen by appending a new note.
type Note struct {
	ID        string      `json:"id"`
	Body      string      `json:"body"`
	Type      string      `json:"type"`
	Author    string      `json:"author"`
	CreatedAt time.Time   `json:"created_at"`
	Changes   []FieldDiff `json:"changes,omitempty"`
}

// FieldDiff is one field-level change recorded on an activity note.
// OldValue and NewValue are rendered for human consumption: absent scalars
// render as "Not set", empty tag lists as "None", and custom-field blobs as
// the fixed label "Updated" on both sides.
type FieldDiff struct {
	Field    string `json:"field"`
	OldValue string `json:"old_value"`
	NewValue string `json:"new_value"`
}
