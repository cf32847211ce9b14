package speech

import (
	"context"

	"ai-companion-be/pkg/artifact"
)

// Transcriber turns spoken audio into text.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte) (string, error)
}

// Synthesizer turns text into spoken audio.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) (*artifact.Audio, error)
}
