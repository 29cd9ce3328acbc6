package model

import (
	"encoding/json"
	"fmt"
)

// Outbound event names the server listens for.
const (
	EventNewGame  = "newGame"
	EventJoinGame = "joinGame"
	EventKeyDown  = "keydown"
)

// Outbound is the closed set of client to server messages.
type Outbound interface {
	outbound()
	Event() string
}

type CreateGame struct{}

type JoinGame struct {
	Code string
}

// KeyPress carries a raw browser key code; the server decides what it means.
type KeyPress struct {
	Code int
}

func (CreateGame) outbound() {}
func (JoinGame) outbound()   {}
func (KeyPress) outbound()   {}

func (CreateGame) Event() string { return EventNewGame }
func (JoinGame) Event() string   { return EventJoinGame }
func (KeyPress) Event() string   { return EventKeyDown }

func EncodeOutbound(m Outbound) ([]byte, error) {
	switch v := m.(type) {
	case CreateGame:
		return encodeEnvelope(v.Event(), nil)
	case JoinGame:
		return encodeEnvelope(v.Event(), v.Code)
	case KeyPress:
		return encodeEnvelope(v.Event(), v.Code)
	default:
		return nil, fmt.Errorf("encode outbound %T: %w", m, ErrMalformed)
	}
}

// DecodeOutbound parses a client frame; the fake server in tests uses it.
func DecodeOutbound(frame []byte) (Outbound, error) {
	var env Envelope
	if err := json.Unmarshal(frame, &env); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}
	switch env.Event {
	case EventNewGame:
		return CreateGame{}, nil
	case EventJoinGame:
		var code string
		if err := decodeData(env, &code); err != nil {
			return nil, err
		}
		return JoinGame{Code: code}, nil
	case EventKeyDown:
		var code int
		if err := decodeData(env, &code); err != nil {
			return nil, err
		}
		return KeyPress{Code: code}, nil
	default:
		return nil, fmt.Errorf("unknown event %q: %w", env.Event, ErrMalformed)
	}
}
