package prompts

import "fmt"

const docsSystemPrompt = `You are a technical writer. Create clear, professional documentation.`

const docsTaskTemplate = `Create a professional README.md for this project:

---
%s
---

Include the project title and description, a features list, installation instructions, how to run the project, API endpoints, technologies used, the project structure and future improvements.

Format in Markdown.`

// DocsPrompts returns the fixed system instruction and the task prompt for
// the documentation artifact class.
func DocsPrompts(description string) (string, string) {
	return docsSystemPrompt, fmt.Sprintf(docsTaskTemplate, description)
}
