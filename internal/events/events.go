package events

import (
	"encoding/json"
	"time"
)

// Event types published by the engine.
const (
	TypePing             = "ping"
	TypePreferencesSaved = "preferences_saved"
	TypeStatusUpdated    = "status_updated"
	TypeDigestGenerated  = "digest_generated"
	TypeJobSaved         = "job_saved"
	TypeJobUnsaved       = "job_unsaved"
	TypeChecklistSaved   = "checklist_saved"
	TypeProofSaved       = "proof_saved"
)

type Event struct {
	Type      string          `json:"type"`
	Version   int             `json:"v"`
	At        time.Time       `json:"at"`
	RequestID string          `json:"request_id,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// MakeEvent builds the serialized envelope pushed to SSE subscribers.
func MakeEvent(reqID, typ string, data any) string {
	var raw json.RawMessage
	if data != nil {
		b, _ := json.Marshal(data)
		raw = b
	}
	e := Event{
		Type:      typ,
		Version:   1,
		At:        time.Now().UTC(),
		RequestID: reqID,
		Data:      raw,
	}
	b, _ := json.Marshal(e)
	return string(b)
}
