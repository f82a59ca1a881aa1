package ai

// Generator composes the prompt builders, the model gateway and the
// extractor into artifact-producing calls. It is stateless across calls;
// each run carries its own correlation token.
type Generator struct {
	gateway      Gateway
	defaultModel string
}

// NewGenerator wires a generator to a model gateway. defaultModel is the
// logical model name used when a request doesn't name one.
func NewGenerator(gateway Gateway, defaultModel string) *Generator {
	return &Generator{
		gateway:      gateway,
		defaultModel: defaultModel,
	}
}

func (g *Generator) resolveModel(logical string) string {
	if logical == "" {
		logical = g.defaultModel
	}
	return ResolveModel(logical)
}
