package ledger

import (
	"encoding/json"
	"time"
)

// Event is one ledgered webhook delivery. ID is the processor's event id,
// which makes the insert the dedup point for the whole pipeline: the first
// delivery creates the row, every redelivery finds it.
type Event struct {
	ID              string          `json:"event_id"`
	Type            string          `json:"type"`
	Payload         json.RawMessage `json:"payload"`
	ReceivedAt      time.Time       `json:"received_at"`
	Processed       bool            `json:"processed"`
	ProcessingError *string         `json:"processing_error,omitempty"`
	ProcessedAt     *time.Time      `json:"processed_at,omitempty"`
}

type Pagination struct {
	PageSize   int
	PageNumber int
}

type EventsQuery struct {
	IDs        []string
	Types      []string
	Processed  *bool
	Pagination *Pagination
}
