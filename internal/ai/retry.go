package ai

import (
	"errors"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// shouldRetry reports whether an OpenAI call failed with a transient error
// worth one retry.
func shouldRetry(err error) bool {
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
		strings.Contains(errMsg, "connection reset by peer") ||
		strings.Contains(errMsg, "context deadline exceeded") {
		return true
	}
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.HTTPStatusCode >= 500 || apiErr.HTTPStatusCode == 429 {
			return true
		}
	}
	return false
}
