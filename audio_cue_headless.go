//go:build headless

// audio_cue_headless.go - Silent quit cue for headless builds

package main

func init() {
	compiledFeatures = append(compiledFeatures, "audio:silent")
}

type OtoCuePlayer struct {
	played int
}

func NewOtoCuePlayer(sampleRate int) (*OtoCuePlayer, error) {
	return &OtoCuePlayer{}, nil
}

func (op *OtoCuePlayer) PlayQuitCue() {
	op.played++
}
