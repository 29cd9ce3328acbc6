package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSnapshot(t *testing.T) {
	s, err := DecodeSnapshot(`{"gridSize":20,"food":{"x":5,"y":5},"players":[{"snake":[{"x":1,"y":1}]},{"snake":[{"x":18,"y":18},{"x":18,"y":17}]}]}`)
	require.NoError(t, err)
	assert.Equal(t, 20, s.GridSize)
	assert.Equal(t, Cell{X: 5, Y: 5}, s.Food)
	require.Len(t, s.Players, 2)
	assert.Equal(t, []Cell{{1, 1}}, s.Players[0].Snake)
	assert.Equal(t, []Cell{{18, 18}, {18, 17}}, s.Players[1].Snake)
}

func TestDecodeSnapshotEmptySnake(t *testing.T) {
	s, err := DecodeSnapshot(`{"gridSize":3,"food":{"x":0,"y":0},"players":[{"snake":[]},{"snake":[{"x":2,"y":2}]}]}`)
	require.NoError(t, err)
	assert.Empty(t, s.Players[0].Snake)
}

func TestDecodeSnapshotRejects(t *testing.T) {
	cases := map[string]string{
		"not json":      `{"gridSize":`,
		"zero grid":     `{"gridSize":0,"food":{"x":0,"y":0},"players":[{"snake":[]},{"snake":[]}]}`,
		"negative grid": `{"gridSize":-4,"food":{"x":0,"y":0},"players":[{"snake":[]},{"snake":[]}]}`,
		"one player":    `{"gridSize":10,"food":{"x":0,"y":0},"players":[{"snake":[]}]}`,
		"no players":    `{"gridSize":10,"food":{"x":0,"y":0}}`,
		"wrong type":    `{"gridSize":"big","food":{"x":0,"y":0},"players":[{"snake":[]},{"snake":[]}]}`,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			s, err := DecodeSnapshot(payload)
			assert.Error(t, err)
			assert.Nil(t, s)
		})
	}
}

func TestDecodeGameOver(t *testing.T) {
	r, err := DecodeGameOver(`{"winner":1}`)
	require.NoError(t, err)
	assert.Equal(t, 1, r.Winner)

	_, err = DecodeGameOver(`{}`)
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = DecodeGameOver(`winner`)
	assert.Error(t, err)
}

func TestDecodeInbound(t *testing.T) {
	cases := []struct {
		frame string
		want  Inbound
	}{
		{`{"event":"init","data":0}`, AssignIdentity{Number: 0}},
		{`{"event":"init","data":1}`, AssignIdentity{Number: 1}},
		{`{"event":"gameState","data":"{\"gridSize\":20}"}`, StateUpdate{Payload: `{"gridSize":20}`}},
		{`{"event":"gameOver","data":"{\"winner\":1}"}`, GameOver{Payload: `{"winner":1}`}},
		{`{"event":"gameCode","data":"ABCD"}`, GameCodeAssigned{Code: "ABCD"}},
		{`{"event":"unknownCode"}`, UnknownCode{}},
		{`{"event":"tooManyPlayers"}`, RoomFull{}},
	}
	for _, c := range cases {
		t.Run(c.frame, func(t *testing.T) {
			got, err := DecodeInbound([]byte(c.frame))
			require.NoError(t, err)
			assert.Equal(t, c.want, got)

			frame, err := EncodeInbound(got)
			require.NoError(t, err)
			again, err := DecodeInbound(frame)
			require.NoError(t, err)
			assert.Equal(t, c.want, again)
		})
	}
}

func TestDecodeInboundRejects(t *testing.T) {
	for _, frame := range []string{
		`nope`,
		`{"event":"teleport","data":1}`,
		`{"event":"init"}`,
		`{"event":"init","data":"zero"}`,
		`{"event":"gameCode","data":42}`,
	} {
		_, err := DecodeInbound([]byte(frame))
		assert.Error(t, err, frame)
	}
}

func TestOutboundEnvelope(t *testing.T) {
	frame, err := EncodeOutbound(CreateGame{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"event":"newGame"}`, string(frame))

	frame, err = EncodeOutbound(JoinGame{Code: "ABCD"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"event":"joinGame","data":"ABCD"}`, string(frame))

	frame, err = EncodeOutbound(KeyPress{Code: 37})
	require.NoError(t, err)
	assert.JSONEq(t, `{"event":"keydown","data":37}`, string(frame))

	m, err := DecodeOutbound(frame)
	require.NoError(t, err)
	assert.Equal(t, KeyPress{Code: 37}, m)
}
