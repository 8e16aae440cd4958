//go:build js

package main

// Dear ImGui needs cgo, so browser builds never show the debug windows.
func newOverlay(bool) Overlay {
	return noOverlay{}
}
