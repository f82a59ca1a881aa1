package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weaver_ai_server/internal/types"
)

func TestGenerateDocs_FencedMarkdown(t *testing.T) {
	response := "Here you go:\n```markdown\n# My Project\n\nA demo.\n```\n"
	g := NewGenerator(respondWith(response), "gpt-5")

	result, err := g.generateDocs(context.Background(), types.ProjectRequest{Description: "a demo"}, "project_test")
	require.NoError(t, err)

	readme, ok := result.Get(types.SlotReadme)
	require.True(t, ok)
	assert.Equal(t, "# My Project\n\nA demo.", readme)
}

func TestGenerateDocs_MdFenceAlias(t *testing.T) {
	response := "```md\n# My Project\n```\n"
	g := NewGenerator(respondWith(response), "gpt-5")

	result, err := g.generateDocs(context.Background(), types.ProjectRequest{Description: "a demo"}, "project_test")
	require.NoError(t, err)

	readme, ok := result.Get(types.SlotReadme)
	require.True(t, ok)
	assert.Equal(t, "# My Project", readme)
}

func TestGenerateDocs_RawResponseFallback(t *testing.T) {
	// No fence at all: the whole response is itself a valid document.
	response := "  # My Project\n\nJust plain markdown without fences.\n"
	g := NewGenerator(respondWith(response), "gpt-5")

	result, err := g.generateDocs(context.Background(), types.ProjectRequest{Description: "a demo"}, "project_test")
	require.NoError(t, err)

	readme, ok := result.Get(types.SlotReadme)
	require.True(t, ok)
	assert.Equal(t, "# My Project\n\nJust plain markdown without fences.", readme)
}
