package ai

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weaver_ai_server/internal/types"
)

const bakeryResponse = "Here you go!\n" +
	"```html\n" +
	"<!DOCTYPE html>\n<html>\n<head>\n<title>Bakery</title>\n</head>\n<body>\n<h1>Fresh bread daily</h1>\n</body>\n</html>\n" +
	"```\n" +
	"```css\nbody { background: wheat; }\n```\n" +
	"```javascript\ndocument.addEventListener('DOMContentLoaded', () => {});\n```\n"

func TestGenerateFrontend_InjectsStylesheetLink(t *testing.T) {
	g := NewGenerator(respondWith(bakeryResponse), "gpt-5")

	result, err := g.generateFrontend(context.Background(), types.ProjectRequest{Description: "a bakery landing page"}, "project_test")
	require.NoError(t, err)

	html, ok := result.Get(types.SlotMarkup)
	require.True(t, ok)

	// Exactly one stylesheet link, positioned before </head>.
	assert.Equal(t, 1, strings.Count(html, `<link rel="stylesheet" href="styles.css">`))
	linkIdx := strings.Index(html, `<link rel="stylesheet" href="styles.css">`)
	headEnd := strings.Index(html, "</head>")
	require.True(t, linkIdx >= 0 && headEnd >= 0)
	assert.Less(t, linkIdx, headEnd)
}

func TestGenerateFrontend_InjectsScriptInclude(t *testing.T) {
	g := NewGenerator(respondWith(bakeryResponse), "gpt-5")

	result, err := g.generateFrontend(context.Background(), types.ProjectRequest{Description: "a bakery landing page"}, "project_test")
	require.NoError(t, err)

	html, _ := result.Get(types.SlotMarkup)
	assert.Equal(t, 1, strings.Count(html, `<script src="app.js"></script>`))
	scriptIdx := strings.Index(html, `<script src="app.js"></script>`)
	bodyEnd := strings.Index(html, "</body>")
	require.True(t, scriptIdx >= 0 && bodyEnd >= 0)
	assert.Less(t, scriptIdx, bodyEnd)
}

func TestGenerateFrontend_KeepsExistingLinks(t *testing.T) {
	response := "```html\n" +
		"<!DOCTYPE html>\n<html>\n<head>\n<link rel=\"stylesheet\" href=\"styles.css\">\n</head>\n" +
		"<body>\n<script src=\"app.js\"></script>\n</body>\n</html>\n" +
		"```\n"
	g := NewGenerator(respondWith(response), "gpt-5")

	result, err := g.generateFrontend(context.Background(), types.ProjectRequest{Description: "anything"}, "project_test")
	require.NoError(t, err)

	html, _ := result.Get(types.SlotMarkup)
	assert.Equal(t, 1, strings.Count(html, "<link"))
	assert.Equal(t, 1, strings.Count(html, "<script"))
}

func TestGenerateFrontend_UnfencedDocument(t *testing.T) {
	response := "Sure, here is the page.\n<!DOCTYPE html>\n<html>\n<head></head>\n<body></body>\n</html>\nDone."
	g := NewGenerator(respondWith(response), "gpt-5")

	result, err := g.generateFrontend(context.Background(), types.ProjectRequest{Description: "anything"}, "project_test")
	require.NoError(t, err)

	html, ok := result.Get(types.SlotMarkup)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.True(t, strings.HasSuffix(html, "</html>"))
}

func TestGenerateFrontend_AbsentSlots(t *testing.T) {
	// Only a markup block; stylesheet and script stay absent.
	response := "```html\n<!DOCTYPE html>\n<html><head></head><body></body></html>\n```\n"
	g := NewGenerator(respondWith(response), "gpt-5")

	result, err := g.generateFrontend(context.Background(), types.ProjectRequest{Description: "anything"}, "project_test")
	require.NoError(t, err)

	_, hasCSS := result.Get(types.SlotStylesheet)
	_, hasJS := result.Get(types.SlotScript)
	assert.False(t, hasCSS)
	assert.False(t, hasJS)
}

func TestGenerateFrontend_JSFenceAlias(t *testing.T) {
	response := "```html\n<!DOCTYPE html>\n<html><head></head><body></body></html>\n```\n" +
		"```js\nconsole.log('hi');\n```\n"
	g := NewGenerator(respondWith(response), "gpt-5")

	result, err := g.generateFrontend(context.Background(), types.ProjectRequest{Description: "anything"}, "project_test")
	require.NoError(t, err)

	js, ok := result.Get(types.SlotScript)
	require.True(t, ok)
	assert.Equal(t, "console.log('hi');", js)
}

func TestGenerateFrontend_SessionSuffix(t *testing.T) {
	gw := respondWith(bakeryResponse)
	g := NewGenerator(gw, "gpt-5")

	_, err := g.generateFrontend(context.Background(), types.ProjectRequest{Description: "anything"}, "project_abc")
	require.NoError(t, err)

	require.Len(t, gw.sessions, 1)
	assert.Equal(t, "project_abc_frontend", gw.sessions[0])
}
