package leaflet

import "github.com/BrandonKowalski/leaflet/pkg/leaflet/constants"

// action is what a button press means in the current view.
type action int

const (
	actionNone action = iota
	actionUp
	actionDown
	actionPageUp
	actionPageDown
	actionOpen           // Open the selected post (A)
	actionClose          // The post view's back control (B)
	actionHistoryBack    // Browser-style back (L1, Alt+Left, hardware back)
	actionHistoryForward // Browser-style forward (R1, Alt+Right, hardware forward)
	actionQuit
)

func actionFor(showingPost bool, button constants.VirtualButton) action {
	switch button {
	case constants.VirtualButtonUp:
		return actionUp
	case constants.VirtualButtonDown:
		return actionDown
	case constants.VirtualButtonL2, constants.VirtualButtonLeft:
		return actionPageUp
	case constants.VirtualButtonR2, constants.VirtualButtonRight:
		return actionPageDown
	case constants.VirtualButtonL1:
		return actionHistoryBack
	case constants.VirtualButtonR1:
		return actionHistoryForward
	case constants.VirtualButtonMenu:
		return actionQuit
	}

	if showingPost {
		if button == constants.VirtualButtonB {
			return actionClose
		}
		return actionNone
	}

	switch button {
	case constants.VirtualButtonA, constants.VirtualButtonStart:
		return actionOpen
	case constants.VirtualButtonSelect:
		return actionQuit
	}
	return actionNone
}
