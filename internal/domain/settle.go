package domain

import m "github.com/mouse-blink/bloch/internal/model"

// Settle drives the engine until it is idle, passing every produced frame to
// onFrame (which may be nil). It returns the frame at rest.
func Settle(e Engine, onFrame func(m.Frame)) m.Frame {
	for {
		frame, advanced := e.Step()
		if !advanced {
			return frame
		}

		if onFrame != nil {
			onFrame(frame)
		}
	}
}
