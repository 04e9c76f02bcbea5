//go:build !linux

package internal

import (
	"context"
	"errors"

	"github.com/BrandonKowalski/leaflet/pkg/leaflet/constants"
)

// WatchHardwareKeys is only supported on Linux.
func WatchHardwareKeys(_ context.Context, path string, _ func(constants.VirtualButton)) error {
	if path == "" {
		return nil
	}
	return errors.New("hardware key devices are only supported on linux")
}
