package llm

import (
	"context"
	"fmt"
)

// disabledClient is used when no API key is configured. Every call fails,
// which routes the generators onto their fallback paths.
type disabledClient struct{}

// NewDisabledClient returns a Client that always errors.
func NewDisabledClient() Client {
	return disabledClient{}
}

func (disabledClient) GenerateContent(context.Context, string, ModelTier) (string, error) {
	return "", fmt.Errorf("llm is not configured")
}

func (disabledClient) GenerateJSON(context.Context, string, ModelTier) (string, error) {
	return "", fmt.Errorf("llm is not configured")
}

func (disabledClient) Close() error { return nil }
