//go:build headless

// video_backend_ebiten_headless.go - Headless build substitute for the ebiten backend

package main

func init() {
	compiledFeatures = append(compiledFeatures, "video:headless")
}

// NewEbitenBackend returns the scripted backend in headless builds so the
// default backend name still resolves without a display.
func NewEbitenBackend() (VideoBackend, error) {
	return NewHeadlessBackend(1920, 1080), nil
}
