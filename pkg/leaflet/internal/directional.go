package internal

import (
	"time"

	"github.com/BrandonKowalski/leaflet/pkg/leaflet/constants"
)

// Direction is a vertical direction of travel through a list or a post.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
)

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	default:
		return ""
	}
}

// Delta returns -1 for up, 1 for down and 0 otherwise.
func (d Direction) Delta() int {
	switch d {
	case DirectionUp:
		return -1
	case DirectionDown:
		return 1
	default:
		return 0
	}
}

// DirectionalInput turns a held up or down button into repeated steps.
// The first repeat fires after the delay, the following ones after each
// interval.
type DirectionalInput struct {
	held        Direction
	lastRepeat  time.Time
	hasRepeated bool

	delay    time.Duration
	interval time.Duration

	now func() time.Time
}

// NewDirectionalInput uses the default repeat timing.
func NewDirectionalInput() DirectionalInput {
	return NewDirectionalInputWithTiming(constants.DefaultRepeatDelay, constants.DefaultRepeatInterval)
}

// NewDirectionalInputWithTiming creates a DirectionalInput with custom timing.
func NewDirectionalInputWithTiming(delay, interval time.Duration) DirectionalInput {
	return DirectionalInput{
		delay:    delay,
		interval: interval,
		now:      time.Now,
	}
}

// Press starts holding the direction of button. It returns that direction,
// or DirectionNone when button is not vertical.
func (d *DirectionalInput) Press(button constants.VirtualButton) Direction {
	dir := directionOf(button)
	if dir == DirectionNone {
		return DirectionNone
	}
	d.held = dir
	d.lastRepeat = d.now()
	d.hasRepeated = false
	return dir
}

// Release stops holding the direction of button.
func (d *DirectionalInput) Release(button constants.VirtualButton) {
	if directionOf(button) == d.held {
		d.Reset()
	}
}

// Held returns the held direction.
func (d *DirectionalInput) Held() Direction {
	return d.held
}

// Update returns the direction to step in this frame, or DirectionNone.
func (d *DirectionalInput) Update() Direction {
	if d.held == DirectionNone {
		return DirectionNone
	}

	now := d.now()
	threshold := d.interval
	if !d.hasRepeated {
		threshold = d.delay
	}

	if now.Sub(d.lastRepeat) < threshold {
		return DirectionNone
	}

	d.lastRepeat = now
	d.hasRepeated = true
	return d.held
}

// Reset forgets the held direction.
func (d *DirectionalInput) Reset() {
	d.held = DirectionNone
	d.hasRepeated = false
}

func directionOf(button constants.VirtualButton) Direction {
	switch button {
	case constants.VirtualButtonUp:
		return DirectionUp
	case constants.VirtualButtonDown:
		return DirectionDown
	default:
		return DirectionNone
	}
}
