package websocket

import "encoding/json"

const (
	ActionState    = "state"
	ActionDispatch = "dispatch"
	ActionUndo     = "undo"
	ActionRedo     = "redo"
	ActionReset    = "reset"
	ActionHints    = "hints"
	ActionSelect   = "select"
	ActionError    = "error"
)

// Message - what a client sends, Payload depends on Action.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Response - what the server pushes. Snapshots go to every subscriber, errors only to the sender.
type Response struct {
	Action  string `json:"action"`
	Payload any    `json:"payload,omitempty"`
	Error   string `json:"error,omitempty"`
}

type hintsPayload struct {
	Enabled bool `json:"enabled"`
}
