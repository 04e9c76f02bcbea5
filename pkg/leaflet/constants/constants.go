// Package constants defines shared constants and input types of the SDL
// reader.
package constants

import (
	"os"
	"time"
)

// Development is the ENVIRONMENT value that enables development mode.
const Development = "DEV"

// Environment variables read by the SDL reader.
const (
	EnvironmentEnvVar  = "ENVIRONMENT"
	WindowWidthEnvVar  = "WINDOW_WIDTH"
	WindowHeightEnvVar = "WINDOW_HEIGHT"
	FontPathEnvVar     = "LEAFLET_FONT_PATH"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
// Development mode opens a decorated 1024x768 window instead of taking over
// the display.
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// VirtualButton is an abstract input button. Keyboard keys, controller
// buttons and hardware keys all map onto it.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA
	VirtualButtonB
	VirtualButtonX
	VirtualButtonY
	VirtualButtonL1
	VirtualButtonL2
	VirtualButtonR1
	VirtualButtonR2
	VirtualButtonStart
	VirtualButtonSelect
	VirtualButtonMenu
)

var buttonNames = [...]string{
	VirtualButtonUnassigned: "Unassigned",
	VirtualButtonUp:         "Up",
	VirtualButtonDown:       "Down",
	VirtualButtonLeft:       "Left",
	VirtualButtonRight:      "Right",
	VirtualButtonA:          "A",
	VirtualButtonB:          "B",
	VirtualButtonX:          "X",
	VirtualButtonY:          "Y",
	VirtualButtonL1:         "L1",
	VirtualButtonL2:         "L2",
	VirtualButtonR1:         "R1",
	VirtualButtonR2:         "R2",
	VirtualButtonStart:      "Start",
	VirtualButtonSelect:     "Select",
	VirtualButtonMenu:       "Menu",
}

// String returns the button's label as printed on a handheld.
func (vb VirtualButton) String() string {
	if vb < 0 || int(vb) >= len(buttonNames) {
		return "Unknown"
	}
	return buttonNames[vb]
}

// Timing and spacing defaults.
const (
	DefaultRepeatDelay          = 150 * time.Millisecond // Hold time before a direction repeats
	DefaultRepeatInterval       = 50 * time.Millisecond  // Time between repeats while held
	DefaultTitleSpacing   int32 = 5                      // Vertical spacing below title text
	DefaultFrameTimeout         = 16                     // Milliseconds to wait for an event per frame
)
