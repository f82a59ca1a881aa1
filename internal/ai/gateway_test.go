package ai

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGateway routes Send calls through a test-provided function and records
// the session identifiers it saw.
type fakeGateway struct {
	send     func(systemPrompt, model, userText, sessionID string) (string, error)
	sessions []string
}

func (f *fakeGateway) Send(_ context.Context, systemPrompt, model, userText, sessionID string) (string, error) {
	f.sessions = append(f.sessions, sessionID)
	return f.send(systemPrompt, model, userText, sessionID)
}

// respondWith returns a gateway that answers every call with the same text.
func respondWith(response string) *fakeGateway {
	return &fakeGateway{send: func(_, _, _, _ string) (string, error) {
		return response, nil
	}}
}

func TestTransportError(t *testing.T) {
	cause := errors.New("connection refused")
	err := &TransportError{Op: "chat completion", Err: cause}

	assert.Contains(t, err.Error(), "chat completion")
	assert.Contains(t, err.Error(), "connection refused")
	require.ErrorIs(t, err, cause)

	var transportErr *TransportError
	require.ErrorAs(t, error(err), &transportErr)
}

func TestWaitForRetry(t *testing.T) {
	assert.NoError(t, waitForRetry(context.Background(), time.Millisecond))
}

func TestWaitForRetry_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := waitForRetry(ctx, time.Minute)
	require.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Second)
}

func TestResolveModel(t *testing.T) {
	assert.Equal(t, "gpt-5", ResolveModel("gpt-5"))
	assert.Equal(t, "gpt-5-mini", ResolveModel("gpt-5-mini"))
	assert.Equal(t, "anthropic/claude-4-sonnet-20250514", ResolveModel("claude-sonnet-4"))
	assert.Equal(t, "gemini/gemini-2.5-pro", ResolveModel("gemini-2.5-pro"))

	// Unrecognized names fall back to the fixed default entry.
	assert.Equal(t, "gpt-5", ResolveModel("some-unknown-model"))
	assert.Equal(t, "gpt-5", ResolveModel(""))
}

func TestGeneratorResolveModel_Default(t *testing.T) {
	g := NewGenerator(respondWith("ok"), "gpt-5-mini")

	assert.Equal(t, "gpt-5-mini", g.resolveModel(""))
	assert.Equal(t, "gpt-5", g.resolveModel("gpt-5"))
}
