package core

import "strings"

// Platform identifies a target social media platform. The set is closed:
// hashtag count ranges and prompt guidance are defined per platform in the
// catalog package.
type Platform int

const (
	PlatformInstagram Platform = iota
	PlatformTikTok
	PlatformLinkedIn
	PlatformTwitter
	PlatformYouTube
)

// platformNames maps each platform to its display name.
var platformNames = map[Platform]string{
	PlatformInstagram: "Instagram",
	PlatformTikTok:    "TikTok",
	PlatformLinkedIn:  "LinkedIn",
	PlatformTwitter:   "Twitter",
	PlatformYouTube:   "YouTube",
}

func (p Platform) String() string {
	if name, ok := platformNames[p]; ok {
		return name
	}
	return platformNames[PlatformInstagram]
}

// ParsePlatform resolves a platform name (case-insensitive). Unknown names
// fall back to Instagram rather than failing, so a bad flag value still
// produces usable output.
func ParsePlatform(name string) Platform {
	for p, n := range platformNames {
		if strings.EqualFold(name, n) {
			return p
		}
	}
	return PlatformInstagram
}

// Platforms returns all platforms in display order.
func Platforms() []Platform {
	return []Platform{PlatformInstagram, PlatformTikTok, PlatformLinkedIn, PlatformTwitter, PlatformYouTube}
}

// Category identifies a content niche used to steer hashtag generation.
type Category int

const (
	CategoryBusiness Category = iota
	CategoryLifestyle
	CategoryTechnology
	CategoryTravel
	CategoryFood
	CategoryFitness
	CategoryEducation
	CategoryEntertainment
)

var categoryNames = map[Category]string{
	CategoryBusiness:      "Business",
	CategoryLifestyle:     "Lifestyle",
	CategoryTechnology:    "Technology",
	CategoryTravel:        "Travel",
	CategoryFood:          "Food",
	CategoryFitness:       "Fitness",
	CategoryEducation:     "Education",
	CategoryEntertainment: "Entertainment",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return categoryNames[CategoryBusiness]
}

// ParseCategory resolves a category name (case-insensitive), falling back to
// Business for unknown names.
func ParseCategory(name string) Category {
	for c, n := range categoryNames {
		if strings.EqualFold(name, n) {
			return c
		}
	}
	return CategoryBusiness
}

// Categories returns all categories in display order.
func Categories() []Category {
	return []Category{
		CategoryBusiness, CategoryLifestyle, CategoryTechnology, CategoryTravel,
		CategoryFood, CategoryFitness, CategoryEducation, CategoryEntertainment,
	}
}

// SourceType labels where the content came from. It only affects prompt
// wording, not the generation flow.
type SourceType int

const (
	SourceManual SourceType = iota
	SourceWebpage
)

func (s SourceType) String() string {
	if s == SourceWebpage {
		return "webpage content"
	}
	return "manual input"
}

// GenerationRequest carries everything one hashtag generation run needs.
// Requests are built fresh per invocation and never persisted; there is no
// shared state between runs.
type GenerationRequest struct {
	Content        string     // Non-empty after trimming; verbatim user or extracted text
	Platform       Platform   // Target platform
	Category       Category   // Content niche
	RequestedCount int        // User-preferred hashtag count, clamped to the platform range
	Source         SourceType // Where Content came from
}
