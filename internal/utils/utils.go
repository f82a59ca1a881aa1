package utils

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// ShouldRetry reports whether an error from the model backend looks
// transient (rate limits, gateway errors, timeouts).
func ShouldRetry(err error) bool {
	if err == nil {
		return false
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "rate limit") ||
		strings.Contains(errMsg, "500 internal server error") ||
		strings.Contains(errMsg, "502 bad gateway") ||
		strings.Contains(errMsg, "503 service unavailable") ||
		strings.Contains(errMsg, "504 gateway timeout") ||
		strings.Contains(errMsg, "timeout") ||
		strings.Contains(errMsg, "connection reset by peer") {
		return true
	}

	var openAIErr *openai.APIError
	if errors.As(err, &openAIErr) {
		if openAIErr.HTTPStatusCode >= 500 || openAIErr.HTTPStatusCode == 429 {
			return true
		}
	}
	return false
}

// DetermineFileType provides a fallback kind when a file record doesn't
// declare one.
func DetermineFileType(filename string) string {
	switch filepath.Ext(strings.ToLower(filename)) {
	case ".html":
		return "html"
	case ".css":
		return "css"
	case ".js":
		return "js"
	case ".py":
		return "python"
	case ".json":
		return "json"
	case ".md":
		return "md"
	case ".txt":
		return "txt"
	default:
		return "unknown"
	}
}
