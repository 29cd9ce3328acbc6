package model

import (
	"encoding/json"
	"fmt"
)

// Inbound event names as the server emits them.
const (
	EventInit           = "init"
	EventGameState      = "gameState"
	EventGameOver       = "gameOver"
	EventGameCode       = "gameCode"
	EventUnknownCode    = "unknownCode"
	EventTooManyPlayers = "tooManyPlayers"
)

// Inbound is the closed set of server to client messages.
type Inbound interface {
	inbound()
	Event() string
}

type AssignIdentity struct {
	Number int
}

// StateUpdate keeps its payload serialized; the handler decodes it only
// while a game is active.
type StateUpdate struct {
	Payload string
}

type GameOver struct {
	Payload string
}

type GameCodeAssigned struct {
	Code string
}

type UnknownCode struct{}

type RoomFull struct{}

func (AssignIdentity) inbound()   {}
func (StateUpdate) inbound()      {}
func (GameOver) inbound()         {}
func (GameCodeAssigned) inbound() {}
func (UnknownCode) inbound()      {}
func (RoomFull) inbound()         {}

func (AssignIdentity) Event() string   { return EventInit }
func (StateUpdate) Event() string      { return EventGameState }
func (GameOver) Event() string         { return EventGameOver }
func (GameCodeAssigned) Event() string { return EventGameCode }
func (UnknownCode) Event() string      { return EventUnknownCode }
func (RoomFull) Event() string         { return EventTooManyPlayers }

// Envelope is the frame shape on the websocket in both directions.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// DecodeInbound turns one websocket text frame into a typed message.
// Only the primitive payloads are decoded here; snapshot and outcome text
// stays serialized.
func DecodeInbound(frame []byte) (Inbound, error) {
	var env Envelope
	if err := json.Unmarshal(frame, &env); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}
	switch env.Event {
	case EventInit:
		var n int
		if err := decodeData(env, &n); err != nil {
			return nil, err
		}
		return AssignIdentity{Number: n}, nil
	case EventGameState:
		var s string
		if err := decodeData(env, &s); err != nil {
			return nil, err
		}
		return StateUpdate{Payload: s}, nil
	case EventGameOver:
		var s string
		if err := decodeData(env, &s); err != nil {
			return nil, err
		}
		return GameOver{Payload: s}, nil
	case EventGameCode:
		var s string
		if err := decodeData(env, &s); err != nil {
			return nil, err
		}
		return GameCodeAssigned{Code: s}, nil
	case EventUnknownCode:
		return UnknownCode{}, nil
	case EventTooManyPlayers:
		return RoomFull{}, nil
	default:
		return nil, fmt.Errorf("unknown event %q: %w", env.Event, ErrMalformed)
	}
}

// EncodeInbound is the inverse of DecodeInbound, used by fake servers in tests
// and by tooling that replays recorded sessions.
func EncodeInbound(m Inbound) ([]byte, error) {
	var data interface{}
	switch v := m.(type) {
	case AssignIdentity:
		data = v.Number
	case StateUpdate:
		data = v.Payload
	case GameOver:
		data = v.Payload
	case GameCodeAssigned:
		data = v.Code
	case UnknownCode, RoomFull:
	default:
		return nil, fmt.Errorf("encode inbound %T: %w", m, ErrMalformed)
	}
	return encodeEnvelope(m.Event(), data)
}

func decodeData(env Envelope, v interface{}) error {
	if len(env.Data) == 0 {
		return fmt.Errorf("decode %s: missing data: %w", env.Event, ErrMalformed)
	}
	if err := json.Unmarshal(env.Data, v); err != nil {
		return fmt.Errorf("decode %s: %w", env.Event, err)
	}
	return nil
}

func encodeEnvelope(event string, data interface{}) ([]byte, error) {
	env := Envelope{Event: event}
	if data != nil {
		raw, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", event, err)
		}
		env.Data = raw
	}
	return json.Marshal(env)
}
