package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "validation", err: Validation("bad input"), want: KindValidation},
		{name: "authentication", err: Authentication("bad key"), want: KindAuthentication},
		{name: "internal", err: Internal("boom", errors.New("db down")), want: KindInternal},
		{name: "plain error", err: errors.New("whatever"), want: KindInternal},
		{name: "wrapped validation", err: fmt.Errorf("context: %w", Validation("bad")), want: KindValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestClientMessage(t *testing.T) {
	assert.Equal(t, "bad input", ClientMessage(Validation("bad input")))
	assert.Equal(t, "Invalid API key", ClientMessage(Authentication("Invalid API key")))

	// Internal detail must never reach the client.
	assert.Equal(t, "Internal server error", ClientMessage(Internal("scan failed", errors.New("pg: connection refused"))))
	assert.Equal(t, "Internal server error", ClientMessage(errors.New("pg: connection refused")))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("timeout")
	err := Internal("storage failure", cause)

	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "storage failure")
	assert.Contains(t, err.Error(), "timeout")
}
