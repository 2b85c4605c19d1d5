// Package bridge drives one wizard session for one front-end connection.
package bridge

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	qr "github.com/skip2/go-qrcode"

	"github.com/nstehr/shiny/catalog"
	"github.com/nstehr/shiny/config"
	"github.com/nstehr/shiny/ipc"
	"github.com/nstehr/shiny/plan"
	"github.com/nstehr/shiny/wizard"
)

// ErrNoSession is returned for requests that arrive before hello.
var ErrNoSession = errors.New("no session: send hello first")

// Bridge owns the wizard session of a single connection. Handlers run on
// the connection's read loop, one at a time.
type Bridge struct {
	Conn    *ipc.Connection
	cat     *catalog.Catalog
	planner *plan.Planner
	cfg     config.Config
	session *wizard.Session
}

func New(conn *ipc.Connection, cat *catalog.Catalog, planner *plan.Planner, cfg config.Config) *Bridge {
	return &Bridge{Conn: conn, cat: cat, planner: planner, cfg: cfg}
}

// Register installs the bridge handlers on its connection.
func (b *Bridge) Register() {
	b.Conn.RegisterHandler(ipc.TypeHello, b.HandleHello)
	b.Conn.RegisterHandler(ipc.TypeDispatch, b.HandleDispatch)
	b.Conn.RegisterHandler(ipc.TypeShare, b.HandleShare)
}

// HandleHello starts a session from the persisted state or share link the
// front end sent and replies with the first plan.
func (b *Bridge) HandleHello(env ipc.Envelope) (*ipc.Envelope, error) {
	var hello ipc.HelloMessage
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &hello); err != nil {
			return nil, fmt.Errorf("unmarshal hello: %w", err)
		}
	}

	initial := wizard.InitialState(b.cat, hello.Persisted, hello.ShareLink)
	b.session = wizard.NewSession(b.cat, b.planner, initial.State)
	b.Conn.Session = b.session.ID
	slog.Info("front end connected", "session", b.session.ID, "shareLink", hello.ShareLink != "", "clearShareLink", initial.ClearShareLink)

	return b.planReply(initial.ClearShareLink)
}

// HandleDispatch applies one action and replies with the new plan.
func (b *Bridge) HandleDispatch(env ipc.Envelope) (*ipc.Envelope, error) {
	if b.session == nil {
		return nil, ErrNoSession
	}
	action, err := wizard.DecodeAction(env.Data)
	if err != nil {
		return nil, err
	}
	if _, err := b.session.Dispatch(action); err != nil {
		return nil, fmt.Errorf("dispatch %s: %w", action.ActionType(), err)
	}
	slog.Info("action dispatched", "session", b.session.ID, "type", action.ActionType())
	return b.planReply(false)
}

// HandleShare replies with the share link of the current state, the full
// URL and a PNG QR code of it.
func (b *Bridge) HandleShare(ipc.Envelope) (*ipc.Envelope, error) {
	if b.session == nil {
		return nil, ErrNoSession
	}
	link, err := b.session.ShareLink()
	if err != nil {
		return nil, err
	}
	url := b.cfg.ShareBaseURL + link
	png, err := qr.Encode(url, qr.Medium, b.cfg.QRSize)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	reply, err := ipc.NewEnvelope(ipc.TypeShare, ipc.ShareMessage{Link: link, URL: url, QR: png})
	if err != nil {
		return nil, err
	}
	return &reply, nil
}

func (b *Bridge) planReply(clearShareLink bool) (*ipc.Envelope, error) {
	gs := b.session.State()
	reply, err := ipc.NewEnvelope(ipc.TypePlan, ipc.PlanMessage{
		Session:        b.session.ID,
		State:          gs,
		Plan:           b.planner.Build(gs),
		ClearShareLink: clearShareLink,
	})
	if err != nil {
		return nil, err
	}
	return &reply, nil
}
