package ipc

import (
	"encoding/json"

	"github.com/nstehr/shiny/model"
	"github.com/nstehr/shiny/plan"
)

// Message types understood by the front end.
const (
	TypeHello    = "hello"
	TypeDispatch = "dispatch"
	TypePlan     = "plan"
	TypeShare    = "share"
	TypeError    = "error"
)

// HelloMessage opens a session. Persisted is the state the front end saved
// last time; ShareLink is the payload of a shared URL, if the user opened one.
type HelloMessage struct {
	Persisted json.RawMessage `json:"persisted,omitempty"`
	ShareLink string          `json:"shareLink,omitempty"`
}

// PlanMessage answers hello and dispatch.
type PlanMessage struct {
	Session string          `json:"session"`
	State   model.GameState `json:"state"`
	Plan    plan.Plan       `json:"plan"`
	// ClearShareLink tells the front end to drop a share link that failed
	// to decode.
	ClearShareLink bool `json:"clearShareLink,omitempty"`
}

type ShareMessage struct {
	Link string `json:"link"`
	URL  string `json:"url"`
	// QR is a PNG image; encoding/json carries it as base64.
	QR []byte `json:"qr"`
}

type ErrorMessage struct {
	Request string `json:"request"`
	Message string `json:"message"`
}
