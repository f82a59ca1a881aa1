package ai

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"

	"weaver_ai_server/internal/types"
)

// runState names the stages of one end-to-end generation run. A run either
// completes the normal path in full or delivers the fallback bundle in full;
// there is no partial-bundle return.
type runState int

const (
	stateFrontend runState = iota
	stateBackend
	stateDocs
	stateAssemble
	stateFallback
	stateDone
)

// GenerateProject runs the full pipeline for one request. It never fails:
// a transport failure at any stage diverts the run to the fallback
// synthesizer, so the caller always receives a usable bundle.
func (g *Generator) GenerateProject(ctx context.Context, req types.ProjectRequest) *types.ProjectBundle {
	runID := uuid.New().String()
	sessionID := "project_" + runID
	log.Printf("Starting complete project generation %s (model %q)", runID, req.Model)

	var (
		frontend types.ArtifactResult
		backend  types.ArtifactResult
		docs     types.ArtifactResult
		bundle   *types.ProjectBundle
	)

	state := stateFrontend
	for state != stateDone {
		switch state {
		case stateFrontend:
			result, err := g.generateFrontend(ctx, req, sessionID)
			if err != nil {
				log.Printf("Frontend generation failed for run %s: %v", runID, err)
				state = stateFallback
				continue
			}
			frontend = result
			state = stateBackend

		case stateBackend:
			result, err := g.generateBackend(ctx, req, sessionID)
			if err != nil {
				log.Printf("Backend generation failed for run %s: %v", runID, err)
				state = stateFallback
				continue
			}
			backend = result
			state = stateDocs

		case stateDocs:
			result, err := g.generateDocs(ctx, req, sessionID)
			if err != nil {
				log.Printf("Docs generation failed for run %s: %v", runID, err)
				state = stateFallback
				continue
			}
			docs = result
			state = stateAssemble

		case stateAssemble:
			bundle = assembleBundle(req.Description, frontend, backend, docs)
			state = stateDone

		case stateFallback:
			bundle = FallbackBundle(req.Description)
			state = stateDone
		}
	}

	log.Printf("Project generation %s finished with %d files", runID, len(bundle.Files))
	return bundle
}

// assembleBundle merges the three artifact results into a canonical bundle.
// It is total: partial results degrade to fewer file records, never to an
// error. A file record is emitted if and only if its slot content is
// non-empty.
func assembleBundle(description string, frontend, backend, docs types.ArtifactResult) *types.ProjectBundle {
	bundle := &types.ProjectBundle{
		PackageJSON: PackageJSON(description),
		Structure:   defaultStructure(),
	}

	if html, ok := frontend.Get(types.SlotMarkup); ok {
		bundle.HTMLContent = html
		bundle.Files = append(bundle.Files, types.FileRecord{
			Filename:    "index.html",
			Content:     html,
			FileType:    "html",
			Description: "Main HTML file with structure and content",
		})
	}
	if css, ok := frontend.Get(types.SlotStylesheet); ok {
		bundle.CSSContent = css
		bundle.Files = append(bundle.Files, types.FileRecord{
			Filename:    "styles.css",
			Content:     css,
			FileType:    "css",
			Description: "Stylesheet with modern, responsive design",
		})
	}
	if js, ok := frontend.Get(types.SlotScript); ok {
		bundle.JSContent = js
		bundle.Files = append(bundle.Files, types.FileRecord{
			Filename:    "app.js",
			Content:     js,
			FileType:    "js",
			Description: "JavaScript for interactivity and API calls",
		})
	}

	server, _ := backend.Get(types.SlotServer)
	models, _ := backend.Get(types.SlotModels)
	pythonBackend := server
	if models != "" {
		if pythonBackend != "" {
			pythonBackend += "\n\n"
		}
		pythonBackend += "# MODELS (models.py):\n" + models
	}
	if pythonBackend != "" {
		bundle.PythonBackend = pythonBackend
		bundle.Files = append(bundle.Files, types.FileRecord{
			Filename:    "server.py",
			Content:     pythonBackend,
			FileType:    "python",
			Description: "FastAPI backend with routes and business logic",
		})
	}

	requirements, ok := backend.Get(types.SlotRequirements)
	if !ok {
		requirements = defaultRequirements
	}
	bundle.RequirementsTxt = requirements
	bundle.Files = append(bundle.Files, types.FileRecord{
		Filename:    "requirements.txt",
		Content:     requirements,
		FileType:    "txt",
		Description: "Python dependencies",
	})

	if models != "" {
		bundle.Files = append(bundle.Files, types.FileRecord{
			Filename:    "models.py",
			Content:     models,
			FileType:    "python",
			Description: "Database models and schemas",
		})
	}

	if readme, ok := docs.Get(types.SlotReadme); ok {
		bundle.Readme = readme
		bundle.Files = append(bundle.Files, types.FileRecord{
			Filename:    "README.md",
			Content:     readme,
			FileType:    "md",
			Description: "Project documentation",
		})
	}

	bundle.Files = append(bundle.Files, types.FileRecord{
		Filename:    "package.json",
		Content:     bundle.PackageJSON,
		FileType:    "json",
		Description: "Frontend dependencies and scripts",
	})

	return bundle
}

// PackageJSON synthesizes the fixed dependency manifest skeleton. The
// description feeds only the human-readable description field, never
// executable logic.
func PackageJSON(description string) string {
	summary := description
	if runes := []rune(summary); len(runes) > 100 {
		summary = string(runes[:100])
	}

	manifest := map[string]any{
		"name":        "generated-website",
		"version":     "1.0.0",
		"description": "Generated website: " + summary,
		"scripts": map[string]string{
			"start": "python -m http.server 8000",
			"dev":   "live-server",
		},
		"dependencies":    map[string]string{},
		"devDependencies": map[string]string{},
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data)
}

func defaultStructure() types.ProjectStructure {
	return types.ProjectStructure{
		Frontend: []string{"index.html", "styles.css", "app.js"},
		Backend:  []string{"server.py", "models.py", "requirements.txt"},
		Docs:     []string{"README.md"},
	}
}
