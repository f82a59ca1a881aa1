package ai

// ModelChoice pairs a provider with the concrete model name it serves.
type ModelChoice struct {
	Provider string
	Name     string
}

// modelTable maps the closed set of logical model names exposed to callers
// onto provider/model pairs.
var modelTable = map[string]ModelChoice{
	"claude-sonnet-4": {Provider: "anthropic", Name: "claude-4-sonnet-20250514"},
	"gpt-5":           {Provider: "openai", Name: "gpt-5"},
	"gpt-5-mini":      {Provider: "openai", Name: "gpt-5-mini"},
	"gemini-2.5-pro":  {Provider: "gemini", Name: "gemini-2.5-pro"},
}

var defaultModelChoice = ModelChoice{Provider: "openai", Name: "gpt-5"}

// ResolveModel returns the wire model identifier for a logical model name,
// falling back to the default entry for unrecognized names. Non-OpenAI
// providers are addressed with the router's provider/model convention.
func ResolveModel(logical string) string {
	choice, ok := modelTable[logical]
	if !ok {
		choice = defaultModelChoice
	}
	if choice.Provider == "openai" {
		return choice.Name
	}
	return choice.Provider + "/" + choice.Name
}
