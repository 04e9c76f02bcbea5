package internal

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/leaflet/pkg/leaflet/constants"
)

// Event is an input event translated to a virtual button.
type Event struct {
	Button  constants.VirtualButton
	Pressed bool
	Repeat  bool // Keyboard auto-repeat of a held key
}

// InputProcessor translates SDL keyboard and game controller events.
type InputProcessor struct {
	keys        map[sdl.Keycode]constants.VirtualButton
	altKeys     map[sdl.Keycode]constants.VirtualButton
	buttons     map[int]constants.VirtualButton
	controllers map[sdl.JoystickID]*sdl.GameController
}

var processor *InputProcessor

// DefaultKeyMap maps keyboard keys to virtual buttons.
var DefaultKeyMap = map[sdl.Keycode]constants.VirtualButton{
	sdl.K_UP:           constants.VirtualButtonUp,
	sdl.K_DOWN:         constants.VirtualButtonDown,
	sdl.K_LEFT:         constants.VirtualButtonLeft,
	sdl.K_RIGHT:        constants.VirtualButtonRight,
	sdl.K_k:            constants.VirtualButtonUp,
	sdl.K_j:            constants.VirtualButtonDown,
	sdl.K_RETURN:       constants.VirtualButtonA,
	sdl.K_KP_ENTER:     constants.VirtualButtonA,
	sdl.K_SPACE:        constants.VirtualButtonA,
	sdl.K_ESCAPE:       constants.VirtualButtonB,
	sdl.K_BACKSPACE:    constants.VirtualButtonB,
	sdl.K_b:            constants.VirtualButtonB,
	sdl.K_PAGEUP:       constants.VirtualButtonL2,
	sdl.K_PAGEDOWN:     constants.VirtualButtonR2,
	sdl.K_LEFTBRACKET:  constants.VirtualButtonL1,
	sdl.K_RIGHTBRACKET: constants.VirtualButtonR1,
	sdl.K_AC_BACK:      constants.VirtualButtonL1,
	sdl.K_AC_FORWARD:   constants.VirtualButtonR1,
	sdl.K_q:            constants.VirtualButtonMenu,
}

// DefaultAltKeyMap applies while Alt is held, like browser history keys.
var DefaultAltKeyMap = map[sdl.Keycode]constants.VirtualButton{
	sdl.K_LEFT:  constants.VirtualButtonL1,
	sdl.K_RIGHT: constants.VirtualButtonR1,
}

// DefaultButtonMap maps game controller buttons to virtual buttons.
var DefaultButtonMap = map[int]constants.VirtualButton{
	int(sdl.CONTROLLER_BUTTON_DPAD_UP):       constants.VirtualButtonUp,
	int(sdl.CONTROLLER_BUTTON_DPAD_DOWN):     constants.VirtualButtonDown,
	int(sdl.CONTROLLER_BUTTON_DPAD_LEFT):     constants.VirtualButtonLeft,
	int(sdl.CONTROLLER_BUTTON_DPAD_RIGHT):    constants.VirtualButtonRight,
	int(sdl.CONTROLLER_BUTTON_A):             constants.VirtualButtonA,
	int(sdl.CONTROLLER_BUTTON_B):             constants.VirtualButtonB,
	int(sdl.CONTROLLER_BUTTON_X):             constants.VirtualButtonX,
	int(sdl.CONTROLLER_BUTTON_Y):             constants.VirtualButtonY,
	int(sdl.CONTROLLER_BUTTON_LEFTSHOULDER):  constants.VirtualButtonL1,
	int(sdl.CONTROLLER_BUTTON_RIGHTSHOULDER): constants.VirtualButtonR1,
	int(sdl.CONTROLLER_BUTTON_START):         constants.VirtualButtonStart,
	int(sdl.CONTROLLER_BUTTON_BACK):          constants.VirtualButtonSelect,
	int(sdl.CONTROLLER_BUTTON_GUIDE):         constants.VirtualButtonMenu,
}

// InitInputProcessor creates the processor and opens attached controllers.
func InitInputProcessor() {
	processor = NewInputProcessor()
	for i := 0; i < sdl.NumJoysticks(); i++ {
		processor.openController(i)
	}
}

// GetInputProcessor returns the processor created by Init.
func GetInputProcessor() *InputProcessor {
	return processor
}

// NewInputProcessor creates a processor with the default mappings.
func NewInputProcessor() *InputProcessor {
	return &InputProcessor{
		keys:        DefaultKeyMap,
		altKeys:     DefaultAltKeyMap,
		buttons:     DefaultButtonMap,
		controllers: make(map[sdl.JoystickID]*sdl.GameController),
	}
}

// MapKey returns the virtual button for a key with modifier state mod.
func (p *InputProcessor) MapKey(key sdl.Keycode, mod uint16) constants.VirtualButton {
	if mod&uint16(sdl.KMOD_ALT) != 0 {
		if button, ok := p.altKeys[key]; ok {
			return button
		}
	}
	return p.keys[key]
}

// MapButton returns the virtual button for a controller button.
func (p *InputProcessor) MapButton(button uint8) constants.VirtualButton {
	return p.buttons[int(button)]
}

// ProcessSDLEvent translates event. It returns nil for events that do not
// map to a virtual button.
func (p *InputProcessor) ProcessSDLEvent(event sdl.Event) *Event {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		button := p.MapKey(e.Keysym.Sym, e.Keysym.Mod)
		if button == constants.VirtualButtonUnassigned {
			return nil
		}
		return &Event{Button: button, Pressed: e.State == sdl.PRESSED, Repeat: e.Repeat != 0}

	case *sdl.ControllerButtonEvent:
		button := p.MapButton(e.Button)
		if button == constants.VirtualButtonUnassigned {
			return nil
		}
		return &Event{Button: button, Pressed: e.State == sdl.PRESSED}

	case *sdl.ControllerDeviceEvent:
		switch e.Type {
		case sdl.CONTROLLERDEVICEADDED:
			p.openController(int(e.Which))
		case sdl.CONTROLLERDEVICEREMOVED:
			p.closeController(sdl.JoystickID(e.Which))
		}
	}

	return nil
}

func (p *InputProcessor) openController(index int) {
	if !sdl.IsGameController(index) {
		return
	}
	controller := sdl.GameControllerOpen(index)
	if controller == nil {
		logger().Warn("Failed to open controller", "index", index, "error", sdl.GetError())
		return
	}
	id := controller.Joystick().InstanceID()
	p.controllers[id] = controller
	logger().Debug("Opened controller", "name", controller.Name(), "id", id)
}

func (p *InputProcessor) closeController(id sdl.JoystickID) {
	if controller, ok := p.controllers[id]; ok {
		controller.Close()
		delete(p.controllers, id)
	}
}

// CloseAllControllers closes every open game controller.
func CloseAllControllers() {
	if processor == nil {
		return
	}
	for id := range processor.controllers {
		processor.closeController(id)
	}
}
