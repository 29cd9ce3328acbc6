package client

import "fmt"

type Notice int

const (
	NoticeWin Notice = iota + 1
	NoticeLose
	NoticeUnknownCode
	NoticeRoomFull
	NoticeDisconnected
)

func (n Notice) Name() string {
	switch n {
	case NoticeWin:
		return "WIN"
	case NoticeLose:
		return "LOSE"
	case NoticeUnknownCode:
		return "UNKNOWN_CODE"
	case NoticeRoomFull:
		return "ROOM_FULL"
	case NoticeDisconnected:
		return "DISCONNECTED"
	default:
		return fmt.Sprintf("N/A(%d)", n)
	}
}

// Text is what the modal shows.
func (n Notice) Text() string {
	switch n {
	case NoticeWin:
		return "You Win!"
	case NoticeLose:
		return "You Lose :("
	case NoticeUnknownCode:
		return "Unknown Game Code"
	case NoticeRoomFull:
		return "This game is already in progress"
	case NoticeDisconnected:
		return "Connection to the game server was lost"
	default:
		return n.Name()
	}
}

// EndsGame is true for outcome notices; dismissing one returns to the lobby.
func (n Notice) EndsGame() bool {
	return n == NoticeWin || n == NoticeLose
}

type Notifier interface {
	Notify(Notice)
}

type NotifierFunc func(Notice)

func (f NotifierFunc) Notify(n Notice) { f(n) }
