package ai

import (
	"fmt"

	"weaver_ai_server/internal/types"
)

// The fallback templates are the terminal recovery path: deterministic,
// model-free, and mutually linked the same way a generated bundle is.

const fallbackHTMLTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Generated Project</title>
    <link rel="stylesheet" href="styles.css">
</head>
<body>
    <div class="container">
        <h1>Your Project</h1>
        <p>%s</p>
        <button id="actionBtn">Get Started</button>
    </div>
    <script src="app.js"></script>
</body>
</html>`

const fallbackCSS = `* {
    margin: 0;
    padding: 0;
    box-sizing: border-box;
}

body {
    font-family: 'Inter', -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
    background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
    min-height: 100vh;
    display: flex;
    align-items: center;
    justify-content: center;
}

.container {
    background: white;
    padding: 60px;
    border-radius: 20px;
    box-shadow: 0 20px 60px rgba(0,0,0,0.3);
    text-align: center;
}

button {
    margin-top: 20px;
    padding: 15px 40px;
    background: #667eea;
    color: white;
    border: none;
    border-radius: 50px;
    font-size: 16px;
    cursor: pointer;
    transition: transform 0.3s;
}

button:hover {
    transform: translateY(-2px);
}`

const fallbackJS = `document.addEventListener('DOMContentLoaded', () => {
    const btn = document.getElementById('actionBtn');

    btn.addEventListener('click', () => {
        alert('Button clicked! This website is working.');
    });

    console.log('Website loaded successfully!');
});`

const fallbackServer = `from fastapi import FastAPI
from fastapi.middleware.cors import CORSMiddleware

app = FastAPI(title="Generated API")

app.add_middleware(
    CORSMiddleware,
    allow_origins=["*"],
    allow_methods=["*"],
    allow_headers=["*"],
)

@app.get("/")
async def root():
    return {"message": "API is running"}

@app.get("/api/data")
async def get_data():
    return {"data": "Sample data"}`

const fallbackRequirements = `fastapi==0.104.1
uvicorn==0.24.0`

// FallbackBundle deterministically produces a complete, self-consistent
// project bundle with no model involvement. It never fails, and its content
// satisfies the same structural invariants as a normally generated bundle.
func FallbackBundle(description string) *types.ProjectBundle {
	html := fmt.Sprintf(fallbackHTMLTemplate, description)
	readme := "# Generated Project\n\n" + description
	packageJSON := PackageJSON(description)

	return &types.ProjectBundle{
		HTMLContent:     html,
		CSSContent:      fallbackCSS,
		JSContent:       fallbackJS,
		PythonBackend:   fallbackServer,
		RequirementsTxt: fallbackRequirements,
		PackageJSON:     packageJSON,
		Readme:          readme,
		Structure:       defaultStructure(),
		Files: []types.FileRecord{
			{
				Filename:    "index.html",
				Content:     html,
				FileType:    "html",
				Description: "Main HTML file with structure and content",
			},
			{
				Filename:    "styles.css",
				Content:     fallbackCSS,
				FileType:    "css",
				Description: "Stylesheet with modern, responsive design",
			},
			{
				Filename:    "app.js",
				Content:     fallbackJS,
				FileType:    "js",
				Description: "JavaScript for interactivity and API calls",
			},
			{
				Filename:    "server.py",
				Content:     fallbackServer,
				FileType:    "python",
				Description: "FastAPI backend with routes and business logic",
			},
			{
				Filename:    "requirements.txt",
				Content:     fallbackRequirements,
				FileType:    "txt",
				Description: "Python dependencies",
			},
			{
				Filename:    "README.md",
				Content:     readme,
				FileType:    "md",
				Description: "Project documentation",
			},
			{
				Filename:    "package.json",
				Content:     packageJSON,
				FileType:    "json",
				Description: "Frontend dependencies and scripts",
			},
		},
	}
}
