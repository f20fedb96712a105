package gesture

import "github.com/agiangrant/simplekit/event"

// Click detects a press and release that stays within a movement and a time
// threshold.
type Click struct {
	// MovementThreshold is the maximum travel from the press position.
	MovementThreshold float32
	// TimeThreshold is the maximum press duration in milliseconds.
	TimeThreshold float64

	state     State
	startX    float32
	startY    float32
	startTime float64
}

// NewClick creates a click translator.
func NewClick(movement float32, duration float64) *Click {
	return &Click{MovementThreshold: movement, TimeThreshold: duration}
}

// State returns the current state.
func (c *Click) State() State { return c.state }

func (c *Click) Update(raw event.RawEvent) event.Event {
	if e := c.update(raw); e != nil {
		return e
	}
	return nil
}

func (c *Click) update(raw event.RawEvent) *event.PointerEvent {
	if !raw.IsPointer() {
		return nil
	}
	switch c.state {
	case StateIdle:
		if raw.Type == event.RawPointerDown {
			c.state = StateDown
			c.startX, c.startY = raw.X, raw.Y
			c.startTime = raw.Time
		}
	case StateDown:
		// Thresholds are checked before the release so a late or
		// far release never produces a click.
		switch {
		case raw.Time-c.startTime > c.TimeThreshold:
			c.state = StateIdle
		case distance(raw.X, raw.Y, c.startX, c.startY) > c.MovementThreshold:
			c.state = StateIdle
		case raw.Type == event.RawPointerUp:
			c.state = StateIdle
			return event.NewPointer(event.Click, raw.Time, raw.X, raw.Y)
		}
	}
	return nil
}

// ============================================================================
// Double Click
// ============================================================================

// DoubleClick detects two clicks in quick succession. It runs a private
// click translator of its own.
type DoubleClick struct {
	// TimeThreshold is the maximum interval in milliseconds between clicks.
	TimeThreshold float64

	click     Click
	state     State
	startTime float64
}

// NewDoubleClick creates a double-click translator. movement and duration
// configure the inner click detection.
func NewDoubleClick(movement float32, duration, interval float64) *DoubleClick {
	return &DoubleClick{
		TimeThreshold: interval,
		click:         Click{MovementThreshold: movement, TimeThreshold: duration},
	}
}

// State returns the current state.
func (d *DoubleClick) State() State { return d.state }

func (d *DoubleClick) Update(raw event.RawEvent) event.Event {
	if !raw.IsPointer() {
		return nil
	}
	click := d.click.update(raw)

	switch d.state {
	case StateIdle:
		if click != nil {
			d.state = StateReady
			d.startTime = click.Time
		}
	case StateReady:
		if raw.Time-d.startTime > d.TimeThreshold {
			// Too late: the pending click and this event are both dropped.
			d.state = StateIdle
		} else if click != nil {
			d.state = StateIdle
			return event.NewPointer(event.DoubleClick, raw.Time, raw.X, raw.Y)
		}
	}
	return nil
}
