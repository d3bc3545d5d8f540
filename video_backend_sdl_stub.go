//go:build !sdl || headless

// video_backend_sdl_stub.go - SDL backend placeholder for builds without the sdl tag

package main

func init() {
	compiledFeatures = append(compiledFeatures, "video:sdl-unavailable")
}

func NewSDLBackend() (VideoBackend, error) {
	return nil, &VideoError{
		Operation: "backend creation",
		Details:   "SDL backend not compiled in; rebuild with -tags sdl",
	}
}
