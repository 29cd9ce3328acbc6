package client

import "github.com/luka333z/snake/model"

// FrameSlot keeps the newest snapshot waiting for the next display refresh.
// Older pending snapshots are overwritten, so several updates between two
// refreshes produce a single paint of the latest one.
type FrameSlot struct {
	pending  *model.GameSnapshot
	skipped  int
	rendered int
}

func (f *FrameSlot) Offer(s *model.GameSnapshot) {
	if f.pending != nil {
		f.skipped++
	}
	f.pending = s
}

// Tick is the refresh callback: paints the pending snapshot if any and empties the slot.
func (f *FrameSlot) Tick(paint func(*model.GameSnapshot)) bool {
	if f.pending == nil {
		return false
	}
	s := f.pending
	f.pending = nil
	paint(s)
	f.rendered++
	return true
}

func (f *FrameSlot) Drop() {
	f.pending = nil
}

func (f *FrameSlot) Pending() bool {
	return f.pending != nil
}
