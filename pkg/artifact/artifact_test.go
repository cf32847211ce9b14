package artifact

import (
	"bytes"
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAudioEncodeRawBytes(t *testing.T) {
	audio := AudioFromBytes([]byte("pcm samples"))

	encoded, err := audio.Encode()
	require.NoError(t, err)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("pcm samples")), encoded)
}

func TestAudioEncodeStreamHandle(t *testing.T) {
	audio := AudioFromStream(bytes.NewReader([]byte("stream samples")))

	encoded, err := audio.Encode()
	require.NoError(t, err)

	decoded, err := Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, []byte("stream samples"), decoded)
}

func TestAudioEncodeUnsupported(t *testing.T) {
	tests := []struct {
		name  string
		audio *Audio
	}{
		{name: "zero kind", audio: &Audio{}},
		{name: "unknown kind", audio: &Audio{Kind: AudioKind(99)}},
		{name: "stream kind without stream", audio: &Audio{Kind: AudioStreamHandle}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.audio.Encode()
			assert.ErrorIs(t, err, ErrUnsupported)
		})
	}
}

func TestEncodeImageFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gen.png")
	require.NoError(t, os.WriteFile(path, []byte("png bytes"), 0o600))

	encoded, err := EncodeImageFile(path)
	require.NoError(t, err)

	decoded, err := Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, []byte("png bytes"), decoded)
}

func TestEncodeImageFileMissing(t *testing.T) {
	_, err := EncodeImageFile(filepath.Join(t.TempDir(), "absent.png"))
	assert.Error(t, err)
}

func TestEncodeBytesRoundTrip(t *testing.T) {
	data := []byte{0x00, 0xff, 0x10}

	decoded, err := Decode(EncodeBytes(data))
	require.NoError(t, err)
	assert.Equal(t, data, decoded)
}
