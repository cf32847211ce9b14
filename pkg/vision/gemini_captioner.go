package vision

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/genai"
)

// GeminiCaptioner describes images with a multimodal Gemini model.
type GeminiCaptioner struct {
	client *genai.Client
	model  string
}

func NewGeminiCaptioner(client *genai.Client, model string) *GeminiCaptioner {
	return &GeminiCaptioner{
		client: client,
		model:  model,
	}
}

func (c *GeminiCaptioner) Caption(ctx context.Context, image []byte, prompt string) (string, error) {
	mimeType := http.DetectContentType(image)

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(prompt),
			genai.NewPartFromBytes(image, mimeType),
		}, genai.RoleUser),
	}

	res, err := c.client.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("vision: captioning image: %w", err)
	}
	text := res.Text()
	if text == "" {
		return "", fmt.Errorf("vision: unexpected response from caption model: %v", res)
	}
	return text, nil
}
