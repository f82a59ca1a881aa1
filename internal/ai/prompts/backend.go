package prompts

import "fmt"

const backendSystemPrompt = `You are an expert backend developer specializing in Python and FastAPI.

Generate production-ready backend code with a FastAPI application, RESTful API endpoints, Pydantic models for validation, MongoDB integration with Motor, CORS configuration, error handling, logging and environment variables. Make it clean, scalable, and production-ready.`

const backendTaskTemplate = `Create a Python FastAPI backend for:

---
%s
---

Generate the following files:

1. server.py: FastAPI app initialization, CORS middleware, API routes, request/response models, error handling, MongoDB integration using Motor
2. models.py: Pydantic data validation models and database schemas
3. requirements.txt: all Python dependencies (fastapi, uvicorn, motor, pydantic, python-dotenv, and any other needed packages)

Format your response:
` + "```python" + `
# server.py
[SERVER CODE]
` + "```" + `

` + "```python" + `
# models.py
[MODELS CODE]
` + "```" + `

` + "```txt" + `
# requirements.txt
[DEPENDENCIES]
` + "```"

// BackendPrompts returns the fixed system instruction and the task prompt
// for the backend artifact class.
func BackendPrompts(description string) (string, string) {
	return backendSystemPrompt, fmt.Sprintf(backendTaskTemplate, description)
}
