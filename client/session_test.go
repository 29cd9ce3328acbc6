package client

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSession(t *testing.T) {
	s := NewSession()
	assert.Equal(t, ScreenInitial, s.Screen)
	assert.False(t, s.Active)
	_, ok := s.PlayerNumber()
	assert.False(t, ok)
	assert.Equal(t, "INITIAL", s.Screen.Name())
	assert.Equal(t, "N/A(9)", Screen(9).Name())
}

func TestSessionCodeField(t *testing.T) {
	s := NewSession()
	s.TypeCode("ab c\t")
	s.TypeCode("ß")
	assert.Equal(t, "abcß", s.CodeInput)

	s.EraseCode()
	assert.Equal(t, "abc", s.CodeInput)
	s.EraseCode()
	s.EraseCode()
	s.EraseCode()
	s.EraseCode()
	assert.Empty(t, s.CodeInput)

	s.TypeCode(strings.Repeat("x", 40))
	assert.Len(t, s.CodeInput, MaxCodeLength)
}

func TestSessionCodeFieldHiddenInGame(t *testing.T) {
	s := NewSession()
	s.TypeCode("AB")
	s.enter()
	s.TypeCode("CD")
	s.EraseCode()
	assert.Equal(t, "AB", s.CodeInput)
}

func TestAssignPlayer(t *testing.T) {
	s := NewSession()
	assert.True(t, s.assignPlayer(1))
	assert.True(t, s.assignPlayer(0), "not active yet")
	s.enter()
	assert.False(t, s.assignPlayer(1))
	n, _ := s.PlayerNumber()
	assert.Equal(t, 0, n)

	s.Reset()
	s.enter()
	assert.True(t, s.assignPlayer(1))
}
