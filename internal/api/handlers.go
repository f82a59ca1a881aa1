package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"weaver_ai_server/internal/ai"
	"weaver_ai_server/internal/store"
	"weaver_ai_server/internal/types"
)

// APIHandler holds dependencies for API endpoints.
type APIHandler struct {
	generator   *ai.Generator
	projectsDir string // empty disables write-through persistence
}

// NewAPIHandler initializes a new API handler with its dependencies.
func NewAPIHandler(generator *ai.Generator, projectsDir string) *APIHandler {
	return &APIHandler{
		generator:   generator,
		projectsDir: projectsDir,
	}
}

// --- Structs for API Requests/Responses ---

type GenerateProjectRequest struct {
	Description string                   `json:"description" binding:"required"`
	Model       string                   `json:"model"`
	Framework   string                   `json:"framework"`
	History     []types.ConversationTurn `json:"history"`
}

type GenerateProjectResponse struct {
	ProjectID string               `json:"projectId"`
	Bundle    *types.ProjectBundle `json:"bundle"`
}

type ChatRequest struct {
	Message string                   `json:"message" binding:"required"`
	Model   string                   `json:"model"`
	History []types.ConversationTurn `json:"history"`
}

type ChatResponse struct {
	Content string `json:"content"`
}

type GenerateImageRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

type GenerateImageResponse struct {
	URL string `json:"url"` // data URL, or a placeholder on failure
}

// --- API Handlers ---

// POST /project/generate
//
// The pipeline is non-failing: internal failures degrade to the fallback
// bundle, so a well-formed request always gets a usable project back.
func (h *APIHandler) GenerateProject(c *gin.Context) {
	var req GenerateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	log.Printf("Received project generation request (model %q)", req.Model)

	bundle := h.generator.GenerateProject(c.Request.Context(), types.ProjectRequest{
		Description: req.Description,
		Model:       req.Model,
		Framework:   req.Framework,
		History:     req.History,
	})

	projectID := uuid.New().String()
	if h.projectsDir != "" {
		if err := store.SaveBundle(h.projectsDir, projectID, bundle); err != nil {
			// Persistence is best-effort; the caller still gets the bundle.
			log.Printf("WARN: Failed to persist project %s: %v", projectID, err)
		}
	}

	c.JSON(http.StatusCreated, GenerateProjectResponse{ProjectID: projectID, Bundle: bundle})
}

// POST /chat
func (h *APIHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	content := h.generator.GenerateChatResponse(c.Request.Context(), req.Message, req.Model, req.History)
	c.JSON(http.StatusOK, ChatResponse{Content: content})
}

// POST /image
//
// Like the pipeline, image generation never errors outward; failures come
// back as a placeholder URL.
func (h *APIHandler) GenerateImage(c *gin.Context) {
	var req GenerateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	url := h.generator.GenerateImage(c.Request.Context(), req.Prompt)
	c.JSON(http.StatusOK, GenerateImageResponse{URL: url})
}
