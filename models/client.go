// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Filali Empire

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Client statuses. A client record is always in exactly one of these states.
const (
	StatusLead     = "lead"
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusLost     = "lost"
)

// ValidStatus reports whether s is one of the four client statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusLead, StatusActive, StatusInactive, StatusLost:
		return true
	}
	return false
}

// Client is a person or organization tracked by the business.
//
// Email, when present, is the sole identity bridge to the payment and
// calendar collaborators: there is no foreign key, only equality match on the
// normalized address.
type Client struct {
	ID        string       `json:"id"`
	FullName  string       `json:"full_name"`
	Email     string       `json:"email,omitempty"`
	Phone     string       `json:"phone,omitempty"`
	Company   string       `json:"company,omitempty"`
	Status    string       `json:"status"`
	Tags      Tags         `json:"tags"`
	Custom    CustomFields `json:"custom"`
	Notes     Notes        `json:"notes"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// CreateClientData carries the caller-supplied fields for a new client.
// Status defaults to "lead"; Tags and Custom default to empty.
type CreateClientData struct {
	FullName string       `json:"full_name"`
	Email    string       `json:"email,omitempty"`
	Phone    string       `json:"phone,omitempty"`
	Company  string       `json:"company,omitempty"`
	Status   string       `json:"status,omitempty"`
	Tags     Tags         `json:"tags,omitempty"`
	Custom   CustomFields `json:"custom,omitempty"`
}

// ClientUpdate is a partial update: nil fields are left untouched.
type ClientUpdate struct {
	FullName *string       `json:"full_name,omitempty"`
	Email    *string       `json:"email,omitempty"`
	Phone    *string       `json:"phone,omitempty"`
	Company  *string       `json:"company,omitempty"`
	Status   *string       `json:"status,omitempty"`
	Tags     *Tags         `json:"tags,omitempty"`
	Custom   *CustomFields `json:"custom,omitempty"`
}

// ClientFilter narrows a client listing.
type ClientFilter struct {
	// Status filters on the exact status value; "" or "all" disables it.
	Status string

	// Search matches case-insensitively against full name, email and company.
	Search string

	// Tags keeps clients whose tag set overlaps the given set.
	Tags []string

	Limit  int
	Offset int
}

// ClientList is the result of a filtered listing: one page of clients plus
// the total number of matches.
type ClientList struct {
	Items []Client `json:"items"`
	Total int      `json:"total"`
}

// ClientStats summarizes the client base by status.
type ClientStats struct {
	Total         int `json:"total"`
	Leads         int `json:"leads"`
	Active        int `json:"active"`
	Inactive      int `json:"inactive"`
	Lost          int `json:"lost"`
	RecentlyAdded int `json:"recently_added"`
}

// Tags is an ordered list of free-text labels, stored as a JSONB column.
type Tags []string

// Value implements [driver.Valuer] for JSONB storage.
func (t Tags) Value() (driver.Value, error) {
	if t == nil {
		t = Tags{}
	}
	return json.Marshal(t)
}

// Scan implements [sql.Scanner] for JSONB storage.
func (t *Tags) Scan(src any) error {
	return scanJSON(src, t)
}

// Notes is the append-only journal attached to a client, stored as a JSONB
// column in insertion order.
type Notes []Note

// Value implements [driver.Valuer] for JSONB storage.
func (n Notes) Value() (driver.Value, error) {
	if n == nil {
		n = Notes{}
	}
	return json.Marshal(n)
}

// Scan implements [sql.Scanner] for JSONB storage.
func (n *Notes) Scan(src any) error {
	return scanJSON(src, n)
}

func scanJSON(src, dst any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("cannot scan %T into JSON column", src)
	}
}
