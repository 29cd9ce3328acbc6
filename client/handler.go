package client

import (
	"github.com/luka333z/snake/model"
)

// Handle dispatches one inbound message. Each case is a short step that
// leaves the session in a consistent state.
func (c *Client) Handle(m model.Inbound) {
	switch msg := m.(type) {
	case model.AssignIdentity:
		c.onAssignIdentity(msg)
	case model.StateUpdate:
		c.onStateUpdate(msg)
	case model.GameOver:
		c.onGameOver(msg)
	case model.GameCodeAssigned:
		c.Session.CodeLabel = msg.Code
	case model.UnknownCode:
		c.Reset()
		c.notifier.Notify(NoticeUnknownCode)
	case model.RoomFull:
		c.Reset()
		c.notifier.Notify(NoticeRoomFull)
	default:
		c.log.Errorf("unhandled inbound message %T", m)
	}
}

func (c *Client) onAssignIdentity(msg model.AssignIdentity) {
	if !c.Session.assignPlayer(msg.Number) {
		n, _ := c.Session.PlayerNumber()
		c.log.WithField("current", n).WithField("offered", msg.Number).Warn("player number already assigned")
		return
	}
	c.log.WithField("player", msg.Number).Info("player number assigned")
}

func (c *Client) onStateUpdate(msg model.StateUpdate) {
	if !c.Session.Active {
		return
	}
	s, err := model.DecodeSnapshot(msg.Payload)
	if err != nil {
		c.log.WithError(err).WithField("event", msg.Event()).Error("dropping snapshot")
		return
	}
	c.frames.Offer(s)
}

func (c *Client) onGameOver(msg model.GameOver) {
	if !c.Session.Active {
		return
	}
	r, err := model.DecodeGameOver(msg.Payload)
	if err != nil {
		c.log.WithError(err).WithField("event", msg.Event()).Error("dropping game over")
		return
	}
	c.Session.Active = false

	notice := NoticeLose
	if n, ok := c.Session.PlayerNumber(); ok && n == r.Winner {
		notice = NoticeWin
	}
	c.log.WithField("winner", r.Winner).WithField("notice", notice.Name()).Info("game over")
	c.notifier.Notify(notice)
}
