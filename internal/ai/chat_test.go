package ai

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weaver_ai_server/internal/types"
)

func TestGenerateChatResponse(t *testing.T) {
	gw := respondWith("Sure, I can help with that.")
	g := NewGenerator(gw, "gpt-5")

	response := g.GenerateChatResponse(context.Background(), "How do I deploy this?", "", nil)
	assert.Equal(t, "Sure, I can help with that.", response)

	require.Len(t, gw.sessions, 1)
	assert.True(t, strings.HasPrefix(gw.sessions[0], "chat_"))
}

func TestGenerateChatResponse_FoldsHistory(t *testing.T) {
	var seenUserText string
	gw := &fakeGateway{send: func(_, _, userText, _ string) (string, error) {
		seenUserText = userText
		return "ok", nil
	}}
	g := NewGenerator(gw, "gpt-5")

	history := []types.ConversationTurn{
		{Role: "user", Content: "Build me a site"},
		{Role: "assistant", Content: "Done, what next?"},
	}
	g.GenerateChatResponse(context.Background(), "Add a contact form", "", history)

	assert.Contains(t, seenUserText, "Conversation so far:")
	assert.Contains(t, seenUserText, "user: Build me a site")
	assert.Contains(t, seenUserText, "assistant: Done, what next?")
	assert.Contains(t, seenUserText, "User: Add a contact form")
}

func TestGenerateChatResponse_ApologyOnFailure(t *testing.T) {
	gw := &fakeGateway{send: func(_, _, _, _ string) (string, error) {
		return "", &TransportError{Op: "chat completion", Err: errors.New("connection refused")}
	}}
	g := NewGenerator(gw, "gpt-5")

	response := g.GenerateChatResponse(context.Background(), "hello", "", nil)
	assert.Contains(t, response, "I apologize")
	assert.Contains(t, response, "connection refused")
}
