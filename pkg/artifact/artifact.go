package artifact

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrUnsupported reports an audio artifact in neither recognized
// representation.
var ErrUnsupported = errors.New("unsupported audio artifact representation")

type AudioKind int

const (
	// AudioRawBytes holds fully-buffered audio.
	AudioRawBytes AudioKind = iota + 1
	// AudioStreamHandle holds a reader that is drained on encode.
	AudioStreamHandle
)

// Audio is a tagged variant over the two audio representations an agent may
// hand back. The tag makes resolution explicit instead of relying on runtime
// type inspection.
type Audio struct {
	Kind   AudioKind
	Bytes  []byte
	Stream io.Reader
}

func AudioFromBytes(b []byte) *Audio {
	return &Audio{Kind: AudioRawBytes, Bytes: b}
}

func AudioFromStream(r io.Reader) *Audio {
	return &Audio{Kind: AudioStreamHandle, Stream: r}
}

// Encode resolves the variant and returns the audio as base64 text suitable
// for storage and transport.
func (a *Audio) Encode() (string, error) {
	switch a.Kind {
	case AudioRawBytes:
		return base64.StdEncoding.EncodeToString(a.Bytes), nil
	case AudioStreamHandle:
		if a.Stream == nil {
			return "", ErrUnsupported
		}
		data, err := io.ReadAll(a.Stream)
		if err != nil {
			return "", fmt.Errorf("draining audio stream: %w", err)
		}
		return base64.StdEncoding.EncodeToString(data), nil
	default:
		return "", ErrUnsupported
	}
}

// EncodeImageFile reads a generated image from disk and returns it as base64
// text. The agent returns image artifacts as filesystem paths.
func EncodeImageFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading image artifact %s: %w", path, err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// EncodeBytes returns raw attachment bytes as base64 text.
func EncodeBytes(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// Decode reverses Encode/EncodeImageFile for reading attachments back.
func Decode(encoded string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(encoded)
}
