package account

import (
	"encoding/json"
	"time"
)

// ConnectAccount is a snapshot mirror of a connected merchant account.
// account.updated events overwrite it wholesale; ordering is restored from
// the event's own creation time, not from receipt order.
type ConnectAccount struct {
	ID                string          `json:"account_id"`
	ProviderAccountID string          `json:"provider_account_id"`
	ChargesEnabled    bool            `json:"charges_enabled"`
	PayoutsEnabled    bool            `json:"payouts_enabled"`
	DetailsSubmitted  bool            `json:"details_submitted"`
	Requirements      json.RawMessage `json:"requirements,omitempty"`
	Capabilities      json.RawMessage `json:"capabilities,omitempty"`
	Status            Status          `json:"status"`
	LastEventAt       time.Time       `json:"last_event_at"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

type Status string

const (
	// StatusPending - onboarding not finished.
	StatusPending Status = "pending"
	// StatusActive - both charges and payouts enabled.
	StatusActive Status = "active"
	// StatusRestricted - onboarded but at least one capability is off.
	StatusRestricted Status = "restricted"
)

// Snapshot is the upsert shape written for each accepted account.updated.
type Snapshot struct {
	ProviderAccountID string
	ChargesEnabled    bool
	PayoutsEnabled    bool
	DetailsSubmitted  bool
	Requirements      json.RawMessage
	Capabilities      json.RawMessage
	Status            Status
	LastEventAt       time.Time
}

// Event is the projection of an account.updated webhook object.
type Event struct {
	ProviderAccountID string          `json:"id"`
	ChargesEnabled    bool            `json:"charges_enabled"`
	PayoutsEnabled    bool            `json:"payouts_enabled"`
	DetailsSubmitted  bool            `json:"details_submitted"`
	Requirements      json.RawMessage `json:"requirements,omitempty"`
	Capabilities      json.RawMessage `json:"capabilities,omitempty"`
}

// DeriveStatus collapses the capability flags into one status field.
func (e Event) DeriveStatus() Status {
	switch {
	case !e.DetailsSubmitted:
		return StatusPending
	case e.ChargesEnabled && e.PayoutsEnabled:
		return StatusActive
	default:
		return StatusRestricted
	}
}
