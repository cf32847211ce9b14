package speech

import (
	"context"
	"fmt"

	"ai-companion-be/pkg/artifact"

	"google.golang.org/genai"
)

const defaultVoice = "Kore"

// GeminiSynthesizer produces spoken audio with a Gemini TTS model. The
// result is returned as the raw-bytes audio variant.
type GeminiSynthesizer struct {
	client *genai.Client
	model  string
	voice  string
}

func NewGeminiSynthesizer(client *genai.Client, model string) *GeminiSynthesizer {
	return &GeminiSynthesizer{
		client: client,
		model:  model,
		voice:  defaultVoice,
	}
}

func (s *GeminiSynthesizer) Synthesize(ctx context.Context, text string) (*artifact.Audio, error) {
	res, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(text), &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{
					VoiceName: s.voice,
				},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("speech: synthesizing audio: %w", err)
	}
	if len(res.Candidates) == 0 || res.Candidates[0].Content == nil || len(res.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("speech: unexpected response from tts model: %v", res)
	}
	blob := res.Candidates[0].Content.Parts[0].InlineData
	if blob == nil || len(blob.Data) == 0 {
		return nil, fmt.Errorf("speech: tts model returned no audio data")
	}
	return artifact.AudioFromBytes(blob.Data), nil
}
