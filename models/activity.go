package models

// Activity item types, one per timeline source.
const (
	ActivityNote        = "note"
	ActivitySystem      = "activity"
	ActivityTransaction = "transaction"
	ActivityEvent       = "event"
)

// ActivityItem is the unit of the merged client timeline. It is a derived,
// disposable view synthesized at dossier-load time and never persisted.
//
// Timestamp is epoch milliseconds: every source's native time representation
// (note RFC3339, transaction epoch seconds, event ISO datetime) is normalized
// to millis at the merge boundary.
type ActivityItem struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Timestamp   int64  `json:"timestamp"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Author      string `json:"author,omitempty"`
	Amount      int64  `json:"amount,omitempty"`
	Currency    string `json:"currency,omitempty"`
	Location    string `json:"location,omitempty"`
	Metadata    any    `json:"metadata,omitempty"`
}

// Dossier is the full client detail view: the record itself, the raw
// collaborator result sets, and the merged activity timeline.
type Dossier struct {
	Client       Client          `json:"client"`
	Transactions []Transaction   `json:"transactions"`
	Events       []CalendarEvent `json:"events"`
	Timeline     []ActivityItem  `json:"timeline"`
}
