package ai

import (
	"context"
	"log"

	"github.com/google/uuid"
)

// imageModel is addressed with the router's provider/model convention, same
// as the non-OpenAI entries of the model table.
const imageModel = "gemini/gemini-2.5-flash-image-preview"

const imagePlaceholderURL = "https://via.placeholder.com/800x600?text=Image+Generation+Placeholder"

// ImageGateway is the image-capable side of a model backend.
type ImageGateway interface {
	CreateImage(ctx context.Context, prompt, sessionID string) (string, error)
}

// GenerateImage produces an image for a prompt and returns it as a data URL.
// Any failure, including a gateway without image support, degrades to a
// fixed placeholder URL so the caller always gets a renderable source.
func (g *Generator) GenerateImage(ctx context.Context, prompt string) string {
	sessionID := "img_" + uuid.New().String()

	images, ok := g.gateway.(ImageGateway)
	if !ok {
		log.Printf("Image generation unavailable for session %s: gateway has no image support", sessionID)
		return imagePlaceholderURL
	}

	payload, err := images.CreateImage(ctx, prompt, sessionID)
	if err != nil {
		log.Printf("Image generation failed for session %s: %v", sessionID, err)
		return imagePlaceholderURL
	}

	return "data:image/png;base64," + payload
}
