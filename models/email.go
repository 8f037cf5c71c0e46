package models

// TemplateVars are the substitution variables of the mass-email template.
// Keys correspond to the {{PLACEHOLDER}} markers in the branded HTML layout.
type TemplateVars struct {
	SubjectLine          string `json:"SUBJECT_LINE"`
	EmailBody            string `json:"EMAIL_BODY"`
	CallToAction         string `json:"CALL_TO_ACTION"`
	URL                  string `json:"URL"`
	FooterLinks          string `json:"FOOTER_LINKS"`
	ManagePreferencesURL string `json:"MANAGE_PREFERENCES_URL"`
	UnsubscribeURL       string `json:"UNSUBSCRIBE_URL"`
}

// EmailClientRef identifies one recipient inside a mass-email batch.
type EmailClientRef struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company,omitempty"`
}

// EmailItem is one per-recipient payload inside a mass-email batch.
type EmailItem struct {
	TemplateVars TemplateVars   `json:"template_vars"`
	Client       EmailClientRef `json:"client"`
	Body         string         `json:"body"`
}

// MassEmailBatch is the single outbound request carrying every recipient of a
// mass email. The whole batch succeeds or fails atomically from the caller's
// perspective; the dispatcher offers no idempotency key, so failed batches
// must not be auto-retried.
type MassEmailBatch struct {
	Emails []EmailItem `json:"emails"`
}

// MassEmailRequest is the inbound API payload: the selected client ids plus
// the template variables to render for each of them.
type MassEmailRequest struct {
	ClientIDs    []string     `json:"client_ids"`
	TemplateVars TemplateVars `json:"template_vars"`
}

// MassEmailResult reports how many recipients were dispatched.
type MassEmailResult struct {
	Sent    int      `json:"sent"`
	Skipped []string `json:"skipped,omitempty"`
}
