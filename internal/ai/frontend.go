package ai

import (
	"context"
	"log"
	"strings"

	"weaver_ai_server/internal/ai/prompts"
	"weaver_ai_server/internal/extract"
	"weaver_ai_server/internal/types"
)

const (
	stylesheetLinkTag = "    <link rel=\"stylesheet\" href=\"styles.css\">\n"
	scriptIncludeTag  = "    <script src=\"app.js\"></script>\n"
)

// generateFrontend produces the markup, stylesheet and script slots for one
// run. Missing slots stay absent; the markup, when present, is stitched so
// it always references the stylesheet and script files.
func (g *Generator) generateFrontend(ctx context.Context, req types.ProjectRequest, sessionID string) (types.ArtifactResult, error) {
	system, task := prompts.FrontendPrompts(req.Description)

	raw, err := g.gateway.Send(ctx, system, g.resolveModel(req.Model), task, sessionID+"_frontend")
	if err != nil {
		return nil, err
	}

	result := types.ArtifactResult{}

	html, ok := extract.Block(raw, "html")
	if !ok {
		// The model sometimes emits the document without a fence.
		html, ok = extract.HTMLDocument(raw)
	}
	if ok {
		result.Set(types.SlotMarkup, stitchFrontendLinks(html))
	}

	if css, ok := extract.Block(raw, "css"); ok {
		result.Set(types.SlotStylesheet, css)
	}

	js, ok := extract.Block(raw, "javascript")
	if !ok {
		js, ok = extract.Block(raw, "js")
	}
	if ok {
		result.Set(types.SlotScript, js)
	}

	log.Printf("Generated frontend for session %s: html=%d chars, css=%d chars, js=%d chars",
		sessionID, len(result[types.SlotMarkup]), len(result[types.SlotStylesheet]), len(result[types.SlotScript]))

	return result, nil
}

// stitchFrontendLinks inserts the stylesheet link before </head> and the
// script include before </body> when the model forgot them, so the three
// frontend files stay mutually linked.
func stitchFrontendLinks(html string) string {
	if !strings.Contains(html, "<link") {
		if headEnd := strings.Index(html, "</head>"); headEnd > 0 {
			html = html[:headEnd] + stylesheetLinkTag + html[headEnd:]
		}
	}
	if !strings.Contains(html, "<script") {
		if bodyEnd := strings.Index(html, "</body>"); bodyEnd > 0 {
			html = html[:bodyEnd] + scriptIncludeTag + html[bodyEnd:]
		}
	}
	return html
}
