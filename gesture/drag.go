package gesture

import "github.com/agiangrant/simplekit/event"

// Drag detects a press followed by movement beyond a threshold. It emits
// dragstart once, drag on every following move and dragend on release.
type Drag struct {
	MovementThreshold float32

	state  State
	startX float32
	startY float32
}

// NewDrag creates a drag translator.
func NewDrag(movement float32) *Drag {
	return &Drag{MovementThreshold: movement}
}

// State returns the current state.
func (d *Drag) State() State { return d.state }

func (d *Drag) Update(raw event.RawEvent) event.Event {
	if !raw.IsPointer() {
		return nil
	}
	switch d.state {
	case StateIdle:
		if raw.Type == event.RawPointerDown {
			d.state = StateDown
			d.startX, d.startY = raw.X, raw.Y
		}
	case StateDown:
		switch raw.Type {
		case event.RawPointerUp:
			d.state = StateIdle
		case event.RawPointerMove:
			if distance(raw.X, raw.Y, d.startX, d.startY) > d.MovementThreshold {
				d.state = StateDrag
				return event.NewPointer(event.DragStart, raw.Time, raw.X, raw.Y)
			}
		}
	case StateDrag:
		switch raw.Type {
		case event.RawPointerMove:
			return event.NewPointer(event.Drag, raw.Time, raw.X, raw.Y)
		case event.RawPointerUp:
			d.state = StateIdle
			return event.NewPointer(event.DragEnd, raw.Time, raw.X, raw.Y)
		}
	}
	return nil
}

// ============================================================================
// Long Press
// ============================================================================

// LongPress detects a press held in place for a duration. Unlike the other
// pointer translators it also advances on null ticks, so it fires while the
// pointer is still and no input arrives.
type LongPress struct {
	MovementThreshold float32
	// Duration is the hold time in milliseconds.
	Duration float64

	state     State
	startX    float32
	startY    float32
	startTime float64
}

// NewLongPress creates a long-press translator.
func NewLongPress(movement float32, duration float64) *LongPress {
	return &LongPress{MovementThreshold: movement, Duration: duration}
}

// State returns the current state.
func (l *LongPress) State() State { return l.state }

func (l *LongPress) Update(raw event.RawEvent) event.Event {
	if !raw.IsPointer() && raw.Type != event.RawNull {
		return nil
	}
	switch l.state {
	case StateIdle:
		if raw.IsPointer() && raw.Type == event.RawPointerDown {
			l.state = StateDown
			l.startX, l.startY = raw.X, raw.Y
			l.startTime = raw.Time
		}
	case StateDown:
		if raw.IsPointer() {
			if raw.Type == event.RawPointerUp ||
				distance(raw.X, raw.Y, l.startX, l.startY) > l.MovementThreshold {
				l.state = StateIdle
				return nil
			}
		}
		if raw.Time-l.startTime >= l.Duration {
			l.state = StateIdle
			return event.NewPointer(event.LongPress, raw.Time, l.startX, l.startY)
		}
	}
	return nil
}
