package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Notification is one entry of a role-specific notification feed.
type Notification struct {
	ID        ID        `json:"id"`
	Title     string    `json:"title,omitempty"`
	Message   string    `json:"message,omitempty"`
	CreatedAt Timestamp `json:"created_at"`
}

// Timestamp accepts RFC 3339 and the "2006-01-02 15:04:05" layout the API
// uses for some resources. null and "" decode to the zero time.
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{time.RFC3339Nano, "2006-01-02 15:04:05", "2006-01-02"}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Format(time.RFC3339Nano))
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		t.Time = time.Time{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("unrecognized timestamp %q", s)
}
