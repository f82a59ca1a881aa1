package types

// ConversationTurn is one prior exchange supplied alongside a request.
type ConversationTurn struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// ProjectRequest is the immutable input for one pipeline run.
type ProjectRequest struct {
	Description string             `json:"description"`
	Model       string             `json:"model"`     // logical model name, resolved through the model table
	Framework   string             `json:"framework"` // advisory hint, echoed into prompts only via the description
	History     []ConversationTurn `json:"history,omitempty"`
}

// Slot names for the pieces of content each artifact class can produce.
const (
	SlotMarkup       = "html"
	SlotStylesheet   = "css"
	SlotScript       = "js"
	SlotServer       = "server"
	SlotModels       = "models"
	SlotRequirements = "requirements"
	SlotReadme       = "readme"
)

// ArtifactResult maps slot names to extracted text. A missing key means the
// slot was absent from the model output; empty strings are never stored, so
// absence stays encoded as key presence.
type ArtifactResult map[string]string

// Set stores a slot value. Empty text is ignored.
func (r ArtifactResult) Set(slot, text string) {
	if text == "" {
		return
	}
	r[slot] = text
}

// Get returns the slot text and whether the slot is present.
func (r ArtifactResult) Get(slot string) (string, bool) {
	text, ok := r[slot]
	return text, ok
}

// FileRecord is one typed file artifact of a generated project.
type FileRecord struct {
	Filename    string `json:"filename"`
	Content     string `json:"content"`
	FileType    string `json:"file_type"` // e.g. "html", "css", "python"
	Description string `json:"description"`
}

// ProjectStructure groups the well-known filenames by role. It is a static
// summary, independent of which files were actually emitted.
type ProjectStructure struct {
	Frontend []string `json:"frontend"`
	Backend  []string `json:"backend"`
	Docs     []string `json:"docs"`
}

// ProjectBundle is the aggregate result of one pipeline run: flattened
// per-kind content fields for direct consumption plus the ordered file
// records. Every non-empty flattened field has a corresponding FileRecord.
type ProjectBundle struct {
	HTMLContent     string           `json:"html_content"`
	CSSContent      string           `json:"css_content"`
	JSContent       string           `json:"js_content"`
	PythonBackend   string           `json:"python_backend"`
	RequirementsTxt string           `json:"requirements_txt"`
	PackageJSON     string           `json:"package_json"`
	Readme          string           `json:"readme"`
	Structure       ProjectStructure `json:"structure"`
	Files           []FileRecord     `json:"files"`
}
