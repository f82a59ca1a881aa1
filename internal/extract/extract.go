// Package extract recovers structured code segments from free-form model
// output. All functions are pure and never fail: any parsing anomaly,
// including an unterminated block, resolves to ok=false.
package extract

import "strings"

const fence = "```"

// Block returns the first fenced code block labelled with lang, trimmed of
// surrounding whitespace. The label must end at a whitespace boundary, so
// "js" never matches a "json" fence. ok is false when no opening marker
// exists, the block is unterminated, or the block is empty after trimming.
func Block(text, lang string) (string, bool) {
	marker := fence + lang
	offset := 0
	for {
		idx := strings.Index(text[offset:], marker)
		if idx == -1 {
			return "", false
		}

		rest := text[offset+idx+len(marker):]
		if rest == "" {
			return "", false
		}
		if c := rest[0]; c != '\n' && c != '\r' && c != ' ' && c != '\t' {
			// Longer label sharing this prefix; keep scanning.
			offset += idx + len(marker)
			continue
		}

		end := strings.Index(rest, fence)
		if end == -1 {
			return "", false
		}

		code := strings.TrimSpace(rest[:end])
		if code == "" {
			return "", false
		}
		return code, true
	}
}

// HTMLDocument scans for a bare HTML document when no fenced block is
// present: the span from the first structural opening signature to the last
// closing </html> tag.
func HTMLDocument(text string) (string, bool) {
	start := strings.Index(text, "<!DOCTYPE")
	if start == -1 {
		start = strings.Index(text, "<html")
	}
	if start == -1 {
		return "", false
	}

	end := strings.LastIndex(text, "</html>")
	if end == -1 || end < start {
		return "", false
	}

	doc := strings.TrimSpace(text[start : end+len("</html>")])
	if doc == "" {
		return "", false
	}
	return doc, true
}
