package retained

import (
	"fmt"
	"image/color"
	"math"
	"sync"
	"sync/atomic"

	"github.com/agiangrant/simplekit/tw"
)

// AnimationID uniquely identifies an animation.
type AnimationID uint64

var nextAnimationID atomic.Uint64

func newAnimationID() AnimationID {
	return AnimationID(nextAnimationID.Add(1))
}

// EasingFunc defines how animation progress maps to value progress.
// Input t is 0-1 (time progress), output is 0-1 (value progress).
type EasingFunc func(t float64) float64

// Common easing functions
var (
	// EaseLinear - constant speed
	EaseLinear EasingFunc = func(t float64) float64 { return t }

	// EaseInQuad - accelerate from zero
	EaseInQuad EasingFunc = func(t float64) float64 { return t * t }

	// EaseOutQuad - decelerate to zero
	EaseOutQuad EasingFunc = func(t float64) float64 { return t * (2 - t) }

	// EaseInOutQuad - accelerate then decelerate
	EaseInOutQuad EasingFunc = func(t float64) float64 {
		if t < 0.5 {
			return 2 * t * t
		}
		return -1 + (4-2*t)*t
	}

	// EaseOutCubic - smooth deceleration
	EaseOutCubic EasingFunc = func(t float64) float64 {
		t--
		return t*t*t + 1
	}

	// EaseOutBack - slight overshoot then settle
	EaseOutBack EasingFunc = func(t float64) float64 {
		c1 := 1.70158
		c3 := c1 + 1
		return 1 + c3*math.Pow(t-1, 3) + c1*math.Pow(t-1, 2)
	}
)

// EasingByName returns the easing function for a name such as "linear" or
// "ease-out", or nil.
func EasingByName(name string) EasingFunc {
	switch name {
	case "linear":
		return EaseLinear
	case "ease-in":
		return EaseInQuad
	case "ease-out":
		return EaseOutQuad
	case "ease-in-out":
		return EaseInOutQuad
	case "ease-out-cubic":
		return EaseOutCubic
	case "ease-out-back":
		return EaseOutBack
	}
	return nil
}

// Animation is a running tween. Times are frame times in milliseconds.
type Animation struct {
	id         AnimationID
	widget     *Widget
	start      float64 // frame time of the first tick; <0 until then
	duration   float64
	update     func(progress float64) // Called each frame with eased progress 0-1
	onComplete func()
	easing     EasingFunc
	loop       bool
	cancelled  atomic.Bool
}

// ID returns the animation's unique identifier.
func (a *Animation) ID() AnimationID {
	return a.id
}

// Cancel stops the animation before its next tick. The update function is
// not called again and OnComplete does not run for an unfinished animation.
func (a *Animation) Cancel() {
	a.cancelled.Store(true)
}

// IsCancelled returns whether the animation was cancelled or has finished.
func (a *Animation) IsCancelled() bool {
	return a.cancelled.Load()
}

// AnimationRegistry holds the running animations of one toolkit. The toolkit
// ticks it every frame, after event dispatch and before layout, so animated
// size and position changes are laid out in the same frame.
type AnimationRegistry struct {
	mu         sync.Mutex
	animations []*Animation
}

// NewAnimationRegistry creates an empty registry.
func NewAnimationRegistry() *AnimationRegistry {
	return &AnimationRegistry{}
}

// Add registers an animation. It starts on the next tick.
func (r *AnimationRegistry) Add(anim *Animation) {
	r.mu.Lock()
	r.animations = append(r.animations, anim)
	r.mu.Unlock()
}

// Remove unregisters an animation without completing it.
func (r *AnimationRegistry) Remove(id AnimationID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, a := range r.animations {
		if a.id == id {
			r.animations = append(r.animations[:i:i], r.animations[i+1:]...)
			return
		}
	}
}

// HasActive returns true if there are any running animations.
func (r *AnimationRegistry) HasActive() bool {
	return r.Count() > 0
}

// Count returns the number of running animations.
func (r *AnimationRegistry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.animations)
}

// Tick advances every animation to frameTime in the order they were added and
// drops finished and cancelled ones. It reports whether any are still
// running. An animation starts on its first tick; one whose widget is not
// attached to the tree at tick time is dropped without completing.
func (r *AnimationRegistry) Tick(frameTime float64) bool {
	r.mu.Lock()
	current := append([]*Animation(nil), r.animations...)
	r.mu.Unlock()

	// Callbacks run outside the lock so they may add or cancel animations.
	var completed []*Animation
	for _, anim := range current {
		if anim.cancelled.Load() {
			continue
		}
		if anim.widget != nil && !anim.widget.attached {
			anim.Cancel()
			continue
		}
		if anim.start < 0 {
			anim.start = frameTime
		}

		t := 1.0
		if anim.duration > 0 {
			t = min((frameTime-anim.start)/anim.duration, 1)
		}
		if anim.update != nil {
			anim.update(anim.easing(t))
		}
		if t >= 1 {
			if anim.loop {
				anim.start = frameTime
				continue
			}
			completed = append(completed, anim)
			anim.cancelled.Store(true)
		}
	}

	r.mu.Lock()
	kept := r.animations[:0]
	for _, a := range r.animations {
		if !a.cancelled.Load() {
			kept = append(kept, a)
		}
	}
	clear(r.animations[len(kept):])
	r.animations = kept
	hasActive := len(kept) > 0
	r.mu.Unlock()

	for _, anim := range completed {
		if anim.onComplete != nil {
			anim.onComplete()
		}
	}
	return hasActive
}

// ============================================================================
// Animation Builder API
// ============================================================================

// AnimationBuilder provides a fluent API for creating animations.
type AnimationBuilder struct {
	widget     *Widget
	registry   *AnimationRegistry
	duration   float64
	easing     EasingFunc
	loop       bool
	onComplete func()
}

// Animate starts building an animation of this widget on registry, normally
// Toolkit.Animations(). The widget must be attached by the next frame.
func (w *Widget) Animate(registry *AnimationRegistry) *AnimationBuilder {
	return &AnimationBuilder{
		widget:   w,
		registry: registry,
		duration: 300,
		easing:   EaseOutCubic,
	}
}

// Duration sets how long the animation runs, in milliseconds.
func (b *AnimationBuilder) Duration(ms float64) *AnimationBuilder {
	b.duration = ms
	return b
}

// Easing sets the easing function.
func (b *AnimationBuilder) Easing(fn EasingFunc) *AnimationBuilder {
	if fn != nil {
		b.easing = fn
	}
	return b
}

// Loop makes the animation repeat until cancelled.
func (b *AnimationBuilder) Loop() *AnimationBuilder {
	b.loop = true
	return b
}

// OnComplete sets a callback for when the animation finishes.
func (b *AnimationBuilder) OnComplete(fn func()) *AnimationBuilder {
	b.onComplete = fn
	return b
}

func (b *AnimationBuilder) start(update func(progress float64)) *Animation {
	anim := &Animation{
		id:         newAnimationID(),
		widget:     b.widget,
		start:      -1,
		duration:   b.duration,
		easing:     b.easing,
		loop:       b.loop,
		onComplete: b.onComplete,
		update:     update,
	}
	b.registry.Add(anim)
	return anim
}

// Position animates the author position used by the Fixed layout.
func (b *AnimationBuilder) Position(toX, toY float32) *Animation {
	fromX, fromY := b.widget.box.X, b.widget.box.Y
	return b.start(func(p float64) {
		b.widget.SetPosition(lerp(fromX, toX, float32(p)), lerp(fromY, toY, float32(p)))
	})
}

// Size animates the explicit padding-box size from the current laid-out size.
func (b *AnimationBuilder) Size(toW, toH float32) *Animation {
	fromW, fromH := b.widget.box.LayoutWidth, b.widget.box.LayoutHeight
	return b.start(func(p float64) {
		b.widget.SetSize(lerp(fromW, toW, float32(p)), lerp(fromH, toH, float32(p)))
	})
}

// Value animates a slider's value. The animation does not emit valuechanged.
func (b *AnimationBuilder) Value(to float32) *Animation {
	from := b.widget.value
	return b.start(func(p float64) {
		b.widget.setValue(lerp(from, to, float32(p)))
	})
}

// Color animates the background colour. Colours that do not parse jump to
// the target at the end.
func (b *AnimationBuilder) Color(to string) *Animation {
	from, fok := tw.ParseColor(orDefault(b.widget.fill, "transparent"))
	target, tok := tw.ParseColor(to)
	return b.start(func(p float64) {
		if !fok || !tok {
			if p >= 1 {
				b.widget.SetFillColor(to)
			}
			return
		}
		b.widget.SetFillColor(hexColor(lerpColor(from, target, p)))
	})
}

// Custom creates an animation with a custom update function that receives
// the eased progress.
func (b *AnimationBuilder) Custom(update func(progress float64)) *Animation {
	return b.start(update)
}

// ============================================================================
// Helper Functions
// ============================================================================

// lerp linearly interpolates between two float32 values.
func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

func lerpColor(from, to color.RGBA, t float64) color.RGBA {
	mix := func(a, b uint8) uint8 {
		// Overshooting easings leave 0-1; channels saturate instead of wrapping.
		v := math.Round(float64(a) + (float64(b)-float64(a))*t)
		return uint8(min(max(v, 0), 255))
	}
	return color.RGBA{mix(from.R, to.R), mix(from.G, to.G), mix(from.B, to.B), mix(from.A, to.A)}
}

func hexColor(c color.RGBA) string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
