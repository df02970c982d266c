// Package generator orchestrates one hashtag generation run: adjust the
// requested count to the platform range, build the prompt, call the gateway,
// and normalize the response. Every run is a pure function of its request
// plus the gateway's reply; nothing is cached or shared between runs.
package generator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"hashly/internal/catalog"
	"hashly/internal/core"
	"hashly/internal/hashtag"
	"hashly/internal/logger"
	"hashly/internal/prompt"
)

// Completer is the text-completion gateway contract. The real implementation
// is llm.Client; tests inject their own.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Generator runs hashtag generation requests against a gateway.
type Generator struct {
	gateway Completer
}

// New creates a Generator backed by the given gateway.
func New(gateway Completer) *Generator {
	return &Generator{gateway: gateway}
}

// Result is the outcome of one generation run.
type Result struct {
	ID            string                 // Request identifier, for log correlation
	Request       core.GenerationRequest // The request as executed
	AdjustedCount int                    // Count after clamping to the platform range
	Hashtags      []string               // Cleaned, deduplicated, ordered; may be empty
	GeneratedAt   time.Time
}

// Empty reports whether generation succeeded but produced no usable hashtags.
// Callers should surface this as a "try again / adjust input" hint, not as a
// failure.
func (r *Result) Empty() bool {
	return len(r.Hashtags) == 0
}

// Generate runs a single request end to end. Gateway failures propagate
// unchanged; there are no retries and no fallback prompts.
func (g *Generator) Generate(ctx context.Context, req core.GenerationRequest) (*Result, error) {
	req.Content = strings.TrimSpace(req.Content)
	if req.Content == "" {
		return nil, fmt.Errorf("no content to generate hashtags for")
	}

	profile := catalog.LookupPlatform(req.Platform)
	count := catalog.AdjustCount(profile, req.RequestedCount)

	id := uuid.NewString()
	logger.Debug("Requesting hashtags",
		"request_id", id,
		"platform", profile.Name,
		"category", catalog.LookupCategory(req.Category).Name,
		"requested", req.RequestedCount,
		"adjusted", count,
		"source", req.Source.String())

	raw, err := g.gateway.Complete(ctx, prompt.Build(req, count))
	if err != nil {
		return nil, err
	}

	tags := hashtag.Normalize(raw, count)
	logger.Info("Hashtags generated", "request_id", id, "returned", len(tags), "adjusted", count)

	return &Result{
		ID:            id,
		Request:       req,
		AdjustedCount: count,
		Hashtags:      tags,
		GeneratedAt:   time.Now().UTC(),
	}, nil
}

// GenerateSeed runs the simple cross-platform flow for a bare seed keyword.
// The count is used as given: the seed prompt has no platform context to
// clamp against.
func (g *Generator) GenerateSeed(ctx context.Context, seed string, count int) (*Result, error) {
	seed = strings.TrimSpace(seed)
	if seed == "" {
		return nil, fmt.Errorf("no seed to generate hashtags for")
	}
	if count <= 0 {
		return nil, fmt.Errorf("hashtag count must be positive, got %d", count)
	}

	id := uuid.NewString()
	logger.Debug("Requesting hashtags from seed", "request_id", id, "count", count)

	raw, err := g.gateway.Complete(ctx, prompt.BuildSeed(seed, count))
	if err != nil {
		return nil, err
	}

	tags := hashtag.Normalize(raw, count)
	logger.Info("Hashtags generated", "request_id", id, "returned", len(tags), "requested", count)

	return &Result{
		ID:            id,
		Request:       core.GenerationRequest{Content: seed, RequestedCount: count, Source: core.SourceManual},
		AdjustedCount: count,
		Hashtags:      tags,
		GeneratedAt:   time.Now().UTC(),
	}, nil
}
