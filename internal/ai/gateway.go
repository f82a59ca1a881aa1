package ai

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"weaver_ai_server/internal/utils"
)

// TransportError wraps a failure to reach the model backend or a non-success
// response from it. The pipeline treats any TransportError as stage failure
// and diverts the run to the fallback synthesizer.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("model gateway %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Gateway wraps a single request/response exchange with the model backend.
type Gateway interface {
	Send(ctx context.Context, systemPrompt, model, userText, sessionID string) (string, error)
}

// OpenAIGateway implements Gateway on the go-openai client. The base URL is
// configurable so an OpenAI-compatible router can front non-OpenAI providers.
type OpenAIGateway struct {
	client *openai.Client
}

// NewOpenAIGateway builds a gateway for the given API key. An empty baseURL
// targets api.openai.com.
func NewOpenAIGateway(apiKey, baseURL string) *OpenAIGateway {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIGateway{client: openai.NewClientWithConfig(cfg)}
}

// Send performs one chat completion. Transient failures are retried once
// after a short delay; anything that still fails surfaces as TransportError.
func (g *OpenAIGateway) Send(ctx context.Context, systemPrompt, model, userText, sessionID string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userText},
		},
		Temperature: 0.3, // Lower temperature for more predictable code generation
		User:        sessionID,
	}

	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil && utils.ShouldRetry(err) {
		log.Printf("Model call failed for session %s, retrying once after delay... Error: %v", sessionID, err)
		if waitErr := waitForRetry(ctx, 2*time.Second); waitErr != nil {
			return "", &TransportError{Op: "chat completion", Err: waitErr}
		}
		resp, err = g.client.CreateChatCompletion(ctx, req)
	}
	if err != nil {
		return "", &TransportError{Op: "chat completion", Err: err}
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		log.Printf("Model usage for empty response (session %s): %+v", sessionID, resp.Usage)
		return "", &TransportError{Op: "chat completion", Err: errors.New("model returned empty response")}
	}

	return resp.Choices[0].Message.Content, nil
}

// CreateImage performs one image generation and returns the raw base64
// payload. Failures surface as TransportError.
func (g *OpenAIGateway) CreateImage(ctx context.Context, prompt, sessionID string) (string, error) {
	req := openai.ImageRequest{
		Prompt:         prompt,
		Model:          imageModel,
		N:              1,
		ResponseFormat: openai.CreateImageResponseFormatB64JSON,
		User:           sessionID,
	}

	resp, err := g.client.CreateImage(ctx, req)
	if err != nil {
		return "", &TransportError{Op: "image generation", Err: err}
	}
	if len(resp.Data) == 0 || resp.Data[0].B64JSON == "" {
		return "", &TransportError{Op: "image generation", Err: errors.New("model returned no image")}
	}

	return resp.Data[0].B64JSON, nil
}

// waitForRetry sleeps out the retry backoff unless the caller abandons the
// request first.
func waitForRetry(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
