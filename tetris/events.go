package tetris

//go:generate go tool stringer -type=EventKind -trimprefix=Event

// EventKind tells what happened on the board.
type EventKind int

const (
	EventSpawn EventKind = iota
	EventMove
	EventRotate
	EventLock
	EventClear
	EventLevelUp
	EventGameOver
)

// Event is reported through Hooks.Event after the board changed.
type Event struct {
	Kind     EventKind
	Shape    Shape
	Lines    int // rows removed, EventClear only
	Progress Progress
}

// Hooks are optional observers of a Board. Nil functions are skipped.
// Both run synchronously inside Tick and must not call back into the Board.
type Hooks struct {
	// Progress is called after every clearing step that removed rows.
	Progress func(Progress)
	Event    func(Event)
}

func (h Hooks) progress(p Progress) {
	if h.Progress != nil {
		h.Progress(p)
	}
}

func (h Hooks) event(e Event) {
	if h.Event != nil {
		h.Event(e)
	}
}
