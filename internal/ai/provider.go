package ai

import (
	"context"
	"errors"
)

var (
	// ErrNotConfigured is returned when the selected provider has no credentials.
	ErrNotConfigured = errors.New("ai provider is not configured")

	// ErrEmptyResponse is returned when the upstream call succeeds but carries no content.
	ErrEmptyResponse = errors.New("ai provider returned an empty response")
)

// Provider generates a structured weekly plan from a prompt pair.
// The returned string is the raw model output; callers own validation.
type Provider interface {
	GeneratePlan(ctx context.Context, req GenerateRequest) (string, error)
}

// GenerateRequest carries the prompt pair built by the plans package.
type GenerateRequest struct {
	Instructions string
	UserMessage  string
}
