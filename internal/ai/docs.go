package ai

import (
	"context"
	"log"
	"strings"

	"weaver_ai_server/internal/ai/prompts"
	"weaver_ai_server/internal/extract"
	"weaver_ai_server/internal/types"
)

// generateDocs produces the readme slot for one run. Documentation is free
// text, so when no recognizable block is fenced the whole response is itself
// a valid document.
func (g *Generator) generateDocs(ctx context.Context, req types.ProjectRequest, sessionID string) (types.ArtifactResult, error) {
	system, task := prompts.DocsPrompts(req.Description)

	raw, err := g.gateway.Send(ctx, system, g.resolveModel(req.Model), task, sessionID+"_docs")
	if err != nil {
		return nil, err
	}

	readme, ok := extract.Block(raw, "markdown")
	if !ok {
		readme, ok = extract.Block(raw, "md")
	}
	if !ok {
		readme = strings.TrimSpace(raw)
	}

	result := types.ArtifactResult{}
	result.Set(types.SlotReadme, readme)

	log.Printf("Generated docs for session %s: readme=%d chars", sessionID, len(readme))

	return result, nil
}
