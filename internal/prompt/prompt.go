// Package prompt builds the instruction strings sent to the generation
// gateway. Building is pure string interpolation: for fixed inputs the output
// is byte-identical every time.
package prompt

import (
	"fmt"
	"strings"

	"hashly/internal/catalog"
	"hashly/internal/core"
)

const (
	// enhancedTemplate is the platform- and category-aware prompt.
	// Verbs: 1 platform, 2 source type, 3 count, 4 category,
	// 5 platform requirements, 6 category keywords, 7 content.
	enhancedTemplate = `You are an expert social media strategist specializing in %[1]s content.
Given the following content from %[2]s, generate exactly %[3]d high-quality,
trend-aware, brand-safe hashtags optimized for %[1]s in the %[4]s niche.

Platform-specific requirements for %[1]s:
%[5]s

Category focus: %[4]s
Include relevant terms like: %[6]s

Content: "%[7]s"

Guidelines:
- Optimize for %[1]s algorithm and user behavior
- Include %[4]s-specific terminology
- Mix broad reach and niche targeting hashtags
- Make hashtags short (1-3 words), readable, and relevant
- Avoid duplicates, numbers, and banned/sensitive words
- Use only standard ASCII characters; no emojis
- Output as ONE single line, space-separated, each starting with '#'
- Output EXACTLY %[3]d hashtags and nothing else

Generate %[3]d hashtags:`

	// seedTemplate is the platform-agnostic prompt used when only a bare
	// seed keyword is available. Verbs: 1 count, 2 seed.
	seedTemplate = `You are an expert social media strategist. Given a user seed (keyword or existing hashtag),
generate exactly %[1]d high-quality, trend-aware, brand-safe hashtags that would perform
well across platforms like Instagram, TikTok, LinkedIn, and X.

Guidelines:
- Make each hashtag short (1-3 words combined), readable, and relevant to the seed.
- Include a smart mix of broad and niche/long-tail hashtags for reach + intent.
- Avoid duplicates, numbers, bulleting, and any banned/sensitive words.
- Use only standard ASCII characters; no emojis.
- Output as ONE single line, space-separated, each starting with '#'.
- Output EXACTLY %[1]d hashtags and nothing else.

Seed: "%[2]s"`
)

// Build composes the full generation instruction for a request. The count is
// passed separately because it has already been adjusted to the platform's
// optimal range. Content is quoted verbatim; rejecting empty content is the
// caller's job.
func Build(req core.GenerationRequest, count int) string {
	platform := catalog.LookupPlatform(req.Platform)
	category := catalog.LookupCategory(req.Category)

	return fmt.Sprintf(enhancedTemplate,
		platform.Name,
		req.Source.String(),
		count,
		category.Name,
		platform.Requirements,
		strings.Join(category.Keywords, ", "),
		strings.TrimSpace(req.Content),
	)
}

// BuildSeed composes the simple cross-platform prompt for a bare seed.
func BuildSeed(seed string, count int) string {
	return fmt.Sprintf(seedTemplate, count, strings.TrimSpace(seed))
}
