//go:build !js

package content

import _ "github.com/BrandonKowalski/certifiable" // Add CA certificates to the default trust store
