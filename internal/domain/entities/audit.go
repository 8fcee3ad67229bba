package entities

import "time"

// AuditEntry is an append-only trace of a state change.
type AuditEntry struct {
	Service   string
	Action    string
	EntityID  string
	Data      map[string]any
	CreatedAt time.Time
}
