package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveSessionTitle(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "short text kept as-is",
			text: "Hello there",
			want: "Hello there",
		},
		{
			name: "exactly thirty runes not truncated",
			text: strings.Repeat("a", 30),
			want: strings.Repeat("a", 30),
		},
		{
			name: "long text truncated with ellipsis",
			text: "This is a rather long first message that keeps going",
			want: "This is a rather long first me...",
		},
		{
			name: "multibyte runes counted as runes not bytes",
			text: strings.Repeat("ñ", 31),
			want: strings.Repeat("ñ", 30) + "...",
		},
		{
			name: "non-printable runes stripped before truncation",
			text: "hi\x00\x07 there",
			want: "hi there",
		},
		{
			name: "empty input stays empty",
			text: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveSessionTitle(tt.text))
		})
	}
}

func TestDeriveSessionTitleFortyOneChars(t *testing.T) {
	text := strings.Repeat("x", 41)
	got := DeriveSessionTitle(text)
	assert.Equal(t, strings.Repeat("x", 30)+"...", got)
	assert.Len(t, []rune(got), 33)
}
