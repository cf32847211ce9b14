package speech

import (
	"bytes"
	"context"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// WhisperTranscriber transcribes audio through the OpenAI audio API.
type WhisperTranscriber struct {
	client openai.Client
	model  openai.AudioModel
}

func NewWhisperTranscriber(apiKey string) *WhisperTranscriber {
	return &WhisperTranscriber{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  openai.AudioModelWhisper1,
	}
}

func (t *WhisperTranscriber) Transcribe(ctx context.Context, audio []byte) (string, error) {
	res, err := t.client.Audio.Transcriptions.New(ctx, openai.AudioTranscriptionNewParams{
		Model: t.model,
		File:  openai.File(bytes.NewReader(audio), "input.wav", "audio/wav"),
	})
	if err != nil {
		return "", fmt.Errorf("speech: transcribing audio: %w", err)
	}
	return res.Text, nil
}
