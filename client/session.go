package client

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// MaxCodeLength bounds the lobby join field, not what the server accepts.
const MaxCodeLength = 16

type Screen int

const (
	ScreenInitial Screen = iota + 1
	ScreenActive
)

func (s Screen) Name() string {
	switch s {
	case ScreenInitial:
		return "INITIAL"
	case ScreenActive:
		return "ACTIVE"
	default:
		return fmt.Sprintf("N/A(%d)", s)
	}
}

// Session is "am I in a game, and as which player". Only Client mutates it,
// always from the game loop goroutine.
type Session struct {
	Screen Screen
	Active bool
	// CodeInput is what the user typed into the lobby join field.
	CodeInput string
	// CodeLabel is the join code the server assigned to the current game.
	CodeLabel string

	playerNumber int
	hasPlayer    bool
}

func NewSession() *Session {
	return &Session{Screen: ScreenInitial}
}

// PlayerNumber reports the server assigned number, ok is false while unset.
func (s *Session) PlayerNumber() (n int, ok bool) {
	return s.playerNumber, s.hasPlayer
}

func (s *Session) LobbyVisible() bool {
	return s.Screen == ScreenInitial
}

// assignPlayer refuses to overwrite a number while the game is running.
func (s *Session) assignPlayer(n int) bool {
	if s.hasPlayer && s.Active {
		return false
	}
	s.playerNumber = n
	s.hasPlayer = true
	return true
}

func (s *Session) enter() {
	s.Screen = ScreenActive
	s.Active = true
	s.CodeLabel = ""
}

// Reset returns to the lobby. Calling it repeatedly is the same as calling it once.
func (s *Session) Reset() {
	s.playerNumber = 0
	s.hasPlayer = false
	s.CodeInput = ""
	s.Screen = ScreenInitial
	s.Active = false
}

// TypeCode appends printable, non-space runes to the join field.
func (s *Session) TypeCode(text string) {
	if !s.LobbyVisible() {
		return
	}
	for _, r := range text {
		if utf8.RuneCountInString(s.CodeInput) >= MaxCodeLength {
			return
		}
		if unicode.IsPrint(r) && !unicode.IsSpace(r) {
			s.CodeInput += string(r)
		}
	}
}

func (s *Session) EraseCode() {
	if !s.LobbyVisible() || s.CodeInput == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(s.CodeInput)
	s.CodeInput = s.CodeInput[:len(s.CodeInput)-size]
}
