package ai

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"weaver_ai_server/internal/ai/prompts"
	"weaver_ai_server/internal/types"
)

// GenerateChatResponse answers a conversational message, folding prior turns
// into the request text. Failures degrade to an apology message so the chat
// surface never errors.
func (g *Generator) GenerateChatResponse(ctx context.Context, prompt, model string, history []types.ConversationTurn) string {
	sessionID := "chat_" + uuid.New().String()

	userText := prompt
	if len(history) > 0 {
		var b strings.Builder
		b.WriteString("Conversation so far:\n")
		for _, turn := range history {
			b.WriteString(turn.Role)
			b.WriteString(": ")
			b.WriteString(turn.Content)
			b.WriteString("\n")
		}
		b.WriteString("\nUser: ")
		b.WriteString(prompt)
		userText = b.String()
	}

	response, err := g.gateway.Send(ctx, prompts.ChatSystemPrompt(), g.resolveModel(model), userText, sessionID)
	if err != nil {
		log.Printf("Chat response generation failed for session %s: %v", sessionID, err)
		return fmt.Sprintf("I apologize, but I encountered an error: %v. Please try again.", err)
	}

	return response
}
