package vision

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"google.golang.org/genai"
)

// GeminiGenerator renders images with an image-output Gemini model and
// writes them to a scratch directory, returning the file path.
type GeminiGenerator struct {
	client    *genai.Client
	model     string
	outputDir string
}

func NewGeminiGenerator(client *genai.Client, model, outputDir string) *GeminiGenerator {
	return &GeminiGenerator{
		client:    client,
		model:     model,
		outputDir: outputDir,
	}
}

func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	res, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseModalities: []string{"IMAGE"},
	})
	if err != nil {
		return "", fmt.Errorf("vision: generating image: %w", err)
	}

	var blob *genai.Blob
	if len(res.Candidates) > 0 && res.Candidates[0].Content != nil {
		for _, part := range res.Candidates[0].Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				blob = part.InlineData
				break
			}
		}
	}
	if blob == nil {
		return "", fmt.Errorf("vision: image model returned no image data")
	}

	if err := os.MkdirAll(g.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("vision: creating image output dir: %w", err)
	}

	ext := ".png"
	if blob.MIMEType == "image/jpeg" {
		ext = ".jpg"
	}
	path := filepath.Join(g.outputDir, uuid.New().String()+ext)
	if err := os.WriteFile(path, blob.Data, 0o644); err != nil {
		return "", fmt.Errorf("vision: writing image artifact: %w", err)
	}
	return path, nil
}
