package model

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformed marks a payload that decoded but does not describe a usable value.
var ErrMalformed = errors.New("malformed payload")

// PlayerCount is the number of snakes every snapshot carries.
const PlayerCount = 2

type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type PlayerState struct {
	Snake []Cell `json:"snake"`
}

// GameSnapshot is one complete frame of authoritative state.
// Players index 0 and 1 map to fixed colours, not to player numbers.
type GameSnapshot struct {
	GridSize int           `json:"gridSize"`
	Food     Cell          `json:"food"`
	Players  []PlayerState `json:"players"`
}

type GameOverResult struct {
	Winner int `json:"winner"`
}

// DecodeSnapshot parses the serialized text of a gameState payload.
func DecodeSnapshot(payload string) (*GameSnapshot, error) {
	var s GameSnapshot
	if err := json.Unmarshal([]byte(payload), &s); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if s.GridSize < 1 {
		return nil, fmt.Errorf("decode snapshot: gridSize %d: %w", s.GridSize, ErrMalformed)
	}
	if len(s.Players) != PlayerCount {
		return nil, fmt.Errorf("decode snapshot: %d players: %w", len(s.Players), ErrMalformed)
	}
	return &s, nil
}

// DecodeGameOver parses the serialized text of a gameOver payload.
// A result without a winner field is rejected.
func DecodeGameOver(payload string) (*GameOverResult, error) {
	var raw struct {
		Winner *int `json:"winner"`
	}
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return nil, fmt.Errorf("decode game over: %w", err)
	}
	if raw.Winner == nil {
		return nil, fmt.Errorf("decode game over: missing winner: %w", ErrMalformed)
	}
	return &GameOverResult{Winner: *raw.Winner}, nil
}
