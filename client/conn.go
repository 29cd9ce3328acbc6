package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/luka333z/snake/model"
	log "github.com/sirupsen/logrus"
)

const (
	writeWait      = 10 * time.Second
	maxMessageSize = 64 << 10
	sendQueue      = 10
	receiveQueue   = 64
)

var (
	ErrClosed    = errors.New("connection closed")
	ErrQueueFull = errors.New("send queue full")
)

// Conn is the websocket to the game server. A reader goroutine decodes
// frames into Inbound in arrival order; a writer goroutine drains the send
// queue. Neither touches the session.
type Conn struct {
	ws       *websocket.Conn
	inbound  chan model.Inbound
	outbound chan model.Outbound
	done     chan struct{}
	once     sync.Once
	log      *log.Entry
}

func Dial(ctx context.Context, url string, logger *log.Entry) (*Conn, error) {
	ws, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", url, err)
	}
	c := &Conn{
		ws:       ws,
		inbound:  make(chan model.Inbound, receiveQueue),
		outbound: make(chan model.Outbound, sendQueue),
		done:     make(chan struct{}),
		log:      logger.WithField("component", "conn"),
	}
	ws.SetReadLimit(maxMessageSize)
	ws.SetPingHandler(func(message string) error {
		err := ws.WriteControl(websocket.PongMessage, []byte(message), time.Now().Add(time.Second))
		if err == websocket.ErrCloseSent {
			return nil
		} else if e, ok := err.(net.Error); ok && e.Timeout() {
			return nil
		}
		return err
	})
	go c.loopRead()
	go c.loopWrite()
	c.log.WithField("url", url).Info("connected")
	return c, nil
}

// Inbound is closed when the connection ends.
func (c *Conn) Inbound() <-chan model.Inbound {
	return c.inbound
}

// Send queues m and returns at once.
func (c *Conn) Send(m model.Outbound) error {
	select {
	case <-c.done:
		return ErrClosed
	default:
	}
	select {
	case c.outbound <- m:
		return nil
	default:
		return ErrQueueFull
	}
}

func (c *Conn) Close() error {
	var err error
	c.once.Do(func() {
		close(c.done)
		_ = c.ws.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second))
		err = c.ws.Close()
	})
	return err
}

func (c *Conn) loopRead() {
	defer close(c.inbound)
	defer c.Close()
	c.log.Debug("read loop started")
loop:
	for {
		messageType, r, err := c.ws.NextReader()
		if err != nil {
			select {
			case <-c.done:
			default:
				if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					c.log.Info("server closed connection")
				} else {
					c.log.WithError(err).Warn("read failed")
				}
			}
			break loop
		}
		if messageType != websocket.TextMessage {
			c.log.WithField("type", messageType).Warn("ignoring non-text frame")
			continue
		}
		data, err := io.ReadAll(r)
		if err != nil {
			c.log.WithError(err).Warn("read failed")
			break loop
		}
		msg, err := model.DecodeInbound(data)
		if err != nil {
			c.log.WithError(err).Error("dropping frame")
			continue
		}
		select {
		case c.inbound <- msg:
		case <-c.done:
			break loop
		}
	}
	c.log.Debug("read loop ended")
}

func (c *Conn) loopWrite() {
	c.log.Debug("write loop started")
	for {
		select {
		case <-c.done:
			return
		case m := <-c.outbound:
			frame, err := model.EncodeOutbound(m)
			if err != nil {
				c.log.WithError(err).Error("cant encode")
				continue
			}
			c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.TextMessage, frame); err != nil {
				c.log.WithError(err).Warn("write failed")
				c.Close()
				return
			}
		}
	}
}
