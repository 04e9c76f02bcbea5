package internal

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/holoplot/go-evdev"

	"github.com/BrandonKowalski/leaflet/pkg/leaflet/constants"
)

// Home returns to the post list through B, the post view's back control.
var hardwareKeys = map[evdev.EvCode]constants.VirtualButton{
	evdev.KEY_BACK:     constants.VirtualButtonL1,
	evdev.KEY_FORWARD:  constants.VirtualButtonR1,
	evdev.KEY_HOMEPAGE: constants.VirtualButtonB,
}

// WatchHardwareKeys reads key presses from the evdev node at path and reports
// the ones SDL does not see, such as the back and forward keys of handhelds
// whose buttons are wired outside the game controller. It returns once the
// device is open; reading continues until ctx is cancelled or the device
// goes away. onPress is called from the reading goroutine.
func WatchHardwareKeys(ctx context.Context, path string, onPress func(constants.VirtualButton)) error {
	if path == "" {
		return nil
	}

	dev, err := evdev.Open(path)
	if err != nil {
		return fmt.Errorf("open input device %s: %w", path, err)
	}

	name, _ := dev.Name()
	logger().Debug("Watching hardware keys", "device", path, "name", name)

	go func() {
		<-ctx.Done()
		_ = dev.Close()
	}()

	go func() {
		for {
			event, err := dev.ReadOne()
			if err != nil {
				if ctx.Err() == nil && !errors.Is(err, os.ErrClosed) {
					logger().Warn("Hardware key device stopped", "device", path, "error", err)
				}
				return
			}

			// Value 1 is a press, 2 an autorepeat and 0 a release.
			if event.Type != evdev.EV_KEY || event.Value != 1 {
				continue
			}
			if button, ok := hardwareKeys[event.Code]; ok {
				onPress(button)
			}
		}
	}()

	return nil
}
