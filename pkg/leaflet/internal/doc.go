// Package internal contains the SDL plumbing of the reader: window and
// renderer setup, fonts, theming, input mapping, text layout and drawing
// helpers. Types and functions in this package are not part of the public
// API.
package internal
