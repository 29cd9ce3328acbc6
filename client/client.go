package client

import (
	"errors"

	"github.com/google/uuid"
	"github.com/luka333z/snake/model"
	log "github.com/sirupsen/logrus"
)

// Sender delivers outbound messages without waiting for the server.
type Sender interface {
	Send(model.Outbound) error
}

// Client owns the session and everything that reads or mutates it. All
// methods must be called from the game loop goroutine.
type Client struct {
	Session *Session

	out      Sender
	painter  *Painter
	frames   *FrameSlot
	input    *InputCapture
	notifier Notifier
	base     *log.Entry
	log      *log.Entry
}

func New(out Sender, painter *Painter, notifier Notifier, logger *log.Entry) *Client {
	session := NewSession()
	return &Client{
		Session:  session,
		out:      out,
		painter:  painter,
		frames:   &FrameSlot{},
		input:    newInputCapture(session, out, logger),
		notifier: notifier,
		base:     logger,
		log:      logger,
	}
}

// StartNew asks the server for a fresh game. Server-side failure shows up
// later as an inbound rejection; a send that cannot leave keeps the lobby.
func (c *Client) StartNew() {
	if c.send(model.CreateGame{}) {
		c.enterGame()
	}
}

// JoinExisting forwards the code as typed; the server validates it.
func (c *Client) JoinExisting(code string) {
	if c.send(model.JoinGame{Code: code}) {
		c.enterGame()
	}
}

func (c *Client) enterGame() {
	c.log = c.base.WithField("attempt", uuid.NewString())
	c.Session.enter()
	c.painter.Acquire()
	c.frames.Drop()
	if c.input.register() {
		c.log.Debug("key listener registered")
	}
	c.log.Info("entered game")
}

// Reset abandons the current game; later messages for it become inert.
func (c *Client) Reset() {
	c.Session.Reset()
	c.frames.Drop()
}

// KeyDown is the single global key listener.
func (c *Client) KeyDown(code int) bool {
	return c.input.KeyDown(code)
}

// Refresh is called once per display refresh and paints at most one frame.
func (c *Client) Refresh() bool {
	return c.frames.Tick(c.painter.Paint)
}

// ConnectionLost resets to the lobby and tells the user.
func (c *Client) ConnectionLost() {
	c.log.Warn("connection lost")
	c.Reset()
	c.notifier.Notify(NoticeDisconnected)
}

func (c *Client) Painter() *Painter {
	return c.painter
}

// send reports whether m was handed to the transport. A closed transport
// raises NoticeDisconnected since no reply can ever arrive.
func (c *Client) send(m model.Outbound) bool {
	err := c.out.Send(m)
	if err == nil {
		return true
	}
	c.log.WithError(err).WithField("event", m.Event()).Error("send failed")
	if errors.Is(err, ErrClosed) {
		c.notifier.Notify(NoticeDisconnected)
	}
	return false
}

// Status is a copy of the observable client state.
type Status struct {
	Screen       string `json:"screen"`
	Active       bool   `json:"active"`
	PlayerNumber *int   `json:"player_number"`
	CodeInput    string `json:"code_input"`
	CodeLabel    string `json:"code_label"`
	Pending      bool   `json:"pending"`
	Rendered     int    `json:"rendered"`
	Skipped      int    `json:"skipped"`
}

func (c *Client) Status() Status {
	st := Status{
		Screen:    c.Session.Screen.Name(),
		Active:    c.Session.Active,
		CodeInput: c.Session.CodeInput,
		CodeLabel: c.Session.CodeLabel,
		Pending:   c.frames.Pending(),
		Rendered:  c.frames.rendered,
		Skipped:   c.frames.skipped,
	}
	if n, ok := c.Session.PlayerNumber(); ok {
		st.PlayerNumber = &n
	}
	return st
}
