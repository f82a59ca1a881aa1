package ai

import (
	"context"
	"log"
	"strings"

	"weaver_ai_server/internal/ai/prompts"
	"weaver_ai_server/internal/extract"
	"weaver_ai_server/internal/types"
)

// defaultRequirements guarantees the output bundle is always installable
// when no dependency block could be extracted.
const defaultRequirements = `fastapi==0.104.1
uvicorn==0.24.0
motor==3.3.2
pydantic==2.5.0
python-dotenv==1.0.0
pymongo==4.6.0`

const (
	serverMarker = "# server.py"
	modelsMarker = "# models.py"
)

// generateBackend produces the server, models and requirements slots for
// one run. The requirements slot is always present.
func (g *Generator) generateBackend(ctx context.Context, req types.ProjectRequest, sessionID string) (types.ArtifactResult, error) {
	system, task := prompts.BackendPrompts(req.Description)

	raw, err := g.gateway.Send(ctx, system, g.resolveModel(req.Model), task, sessionID+"_backend")
	if err != nil {
		return nil, err
	}

	result := types.ArtifactResult{}

	server, models := splitBackendSections(raw)
	result.Set(types.SlotServer, server)
	result.Set(types.SlotModels, models)

	requirements, ok := extract.Block(raw, "txt")
	if !ok {
		requirements, ok = extract.Block(raw, "text")
	}
	if !ok {
		requirements = defaultRequirements
	}
	result.Set(types.SlotRequirements, requirements)

	log.Printf("Generated backend for session %s: server=%d chars, models=%d chars",
		sessionID, len(server), len(models))

	return result, nil
}

// splitBackendSections separates combined backend output into server and
// model segments. The two-way split applies only when the models marker
// follows the server marker; any other ordering keeps all extracted code as
// the server segment.
func splitBackendSections(raw string) (server, models string) {
	serverIdx := strings.Index(raw, serverMarker)
	modelsIdx := strings.Index(raw, modelsMarker)
	if serverIdx < 0 || modelsIdx < 0 || modelsIdx < serverIdx {
		server, _ = extract.Block(raw, "python")
		return server, ""
	}

	head := raw[:modelsIdx]
	tail := raw[modelsIdx:]

	server, ok := extract.Block(head, "python")
	if !ok {
		// Both markers sit inside a single fence; the cut leaves the head
		// unterminated, so close it before extracting.
		server, _ = extract.Block(head+"```", "python")
	}

	models, ok = extract.Block(tail, "python")
	if !ok {
		// The cut lands past the tail's fence opener; restore it.
		models, _ = extract.Block("```python\n"+tail, "python")
	}

	return server, models
}
