// Package loop runs game systems in a fixed order, one frame at a time.
//
// A Scheduler executes every registered System once per frame, records how
// long each one took, and flushes the frame's deferred commands after the
// last system has run.
package loop

import "time"

// System is one step of a frame. Implementations may keep state in their
// own fields; it persists between frames.
type System interface {
	Execute(frame *Frame)
}

// SystemFunc adapts a plain function to the System interface.
type SystemFunc func(frame *Frame)

func (f SystemFunc) Execute(frame *Frame) { f(frame) }

// Frame is handed to every system during a single scheduler step.
type Frame struct {
	DeltaTime time.Duration
	Commands  *Commands
}

func newFrame(dt time.Duration) *Frame {
	return &Frame{
		DeltaTime: dt,
		Commands:  newCommands(),
	}
}
