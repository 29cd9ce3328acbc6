package client

import (
	"github.com/luka333z/snake/model"
	log "github.com/sirupsen/logrus"
)

// InputCapture forwards raw key codes while a game is active. It is
// registered once; afterwards only the session's Active flag gates it, so
// entering several games never duplicates a key press.
type InputCapture struct {
	session    *Session
	out        Sender
	registered bool
	log        *log.Entry
}

func newInputCapture(session *Session, out Sender, logger *log.Entry) *InputCapture {
	return &InputCapture{session: session, out: out, log: logger}
}

// register reports whether this call did the registration.
func (in *InputCapture) register() bool {
	if in.registered {
		return false
	}
	in.registered = true
	return true
}

// KeyDown sends the code unchanged and reports whether it was forwarded.
func (in *InputCapture) KeyDown(code int) bool {
	if !in.registered || !in.session.Active {
		return false
	}
	if err := in.out.Send(model.KeyPress{Code: code}); err != nil {
		in.log.WithError(err).WithField("key", code).Warn("keypress not sent")
		return false
	}
	return true
}
