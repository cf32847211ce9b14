package vision

import "context"

// Captioner describes an image in text, optionally steered by a prompt.
type Captioner interface {
	Caption(ctx context.Context, image []byte, prompt string) (string, error)
}

// Generator renders an image for a prompt and returns the path of the
// written file.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
