package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want int
	}{
		{name: "invalid argument", err: InvalidArgument("bad"), want: 400},
		{name: "unauthenticated", err: Unauthenticated("who"), want: 401},
		{name: "forbidden", err: Forbidden("no"), want: 403},
		{name: "not found", err: NotFound("gone"), want: 404},
		{name: "persistence", err: Persistence("store", errors.New("disk")), want: 500},
		{name: "unsupported artifact", err: UnsupportedArtifact("variant"), want: 500},
		{name: "unknown code falls through to 500", err: &AppError{Code: "SOMETHING_ELSE"}, want: 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.HTTPStatus())
		})
	}
}

func TestAsUnwrapsWrappedErrors(t *testing.T) {
	base := NotFound("chat session %s not found", "abc")
	wrapped := fmt.Errorf("handling request: %w", base)

	appErr, ok := As(wrapped)
	require.True(t, ok)
	assert.Equal(t, CodeNotFound, appErr.Code)

	_, ok = As(errors.New("plain"))
	assert.False(t, ok)
}

func TestPersistenceKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Persistence("failed to save message", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "failed to save message")
	assert.Contains(t, err.Error(), "connection refused")
}
