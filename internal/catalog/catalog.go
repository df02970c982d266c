// Package catalog holds the static platform and category tables that steer
// hashtag generation. The tables are immutable after process start, so
// unsynchronized concurrent reads are safe.
package catalog

import "hashly/internal/core"

// PlatformProfile describes how hashtags should look on one platform.
type PlatformProfile struct {
	Name         string // Display name
	MinCount     int    // Lower bound of the optimal hashtag count range
	MaxCount     int    // Upper bound of the optimal hashtag count range
	Style        string // Short description of the platform's hashtag style
	Requirements string // Guidance injected into the generation prompt
}

// CategoryProfile describes a content niche and its seed keywords.
type CategoryProfile struct {
	Name     string
	Keywords []string
}

var platformProfiles = map[core.Platform]PlatformProfile{
	core.PlatformInstagram: {
		Name:         "Instagram",
		MinCount:     8,
		MaxCount:     12,
		Style:        "Mix of popular and niche hashtags for community engagement",
		Requirements: "Focus on lifestyle, visual appeal, and community building. Include trending and evergreen hashtags.",
	},
	core.PlatformTikTok: {
		Name:         "TikTok",
		MinCount:     5,
		MaxCount:     8,
		Style:        "Trending and viral format hashtags",
		Requirements: "Emphasize trending challenges, viral content, and short catchy phrases. Include dance, music, and trend-related tags.",
	},
	core.PlatformLinkedIn: {
		Name:         "LinkedIn",
		MinCount:     3,
		MaxCount:     5,
		Style:        "Professional and industry-specific hashtags",
		Requirements: "Focus on professional development, industry insights, and thought leadership. Avoid casual or entertainment hashtags.",
	},
	core.PlatformTwitter: {
		Name:         "Twitter",
		MinCount:     1,
		MaxCount:     3,
		Style:        "Concise and trending topic hashtags",
		Requirements: "Keep it minimal and news-worthy. Focus on current events, conversations, and trending topics.",
	},
	core.PlatformYouTube: {
		Name:         "YouTube",
		MinCount:     5,
		MaxCount:     10,
		Style:        "Searchable keyword hashtags",
		Requirements: "Optimize for search discovery. Include descriptive, educational, and how-to related hashtags.",
	},
}

var categoryProfiles = map[core.Category]CategoryProfile{
	core.CategoryBusiness: {
		Name:     "Business",
		Keywords: []string{"entrepreneur", "startup", "leadership", "productivity", "business", "marketing", "sales", "growth"},
	},
	core.CategoryLifestyle: {
		Name:     "Lifestyle",
		Keywords: []string{"dailylife", "inspiration", "wellness", "mindfulness", "lifestyle", "motivation", "selfcare", "happiness"},
	},
	core.CategoryTechnology: {
		Name:     "Technology",
		Keywords: []string{"tech", "innovation", "AI", "digital", "software", "coding", "programming", "future"},
	},
	core.CategoryTravel: {
		Name:     "Travel",
		Keywords: []string{"wanderlust", "adventure", "explore", "destination", "travel", "vacation", "journey", "discover"},
	},
	core.CategoryFood: {
		Name:     "Food",
		Keywords: []string{"foodie", "recipe", "cooking", "delicious", "cuisine", "chef", "homemade", "tasty"},
	},
	core.CategoryFitness: {
		Name:     "Fitness",
		Keywords: []string{"workout", "health", "motivation", "fitlife", "training", "gym", "exercise", "wellness"},
	},
	core.CategoryEducation: {
		Name:     "Education",
		Keywords: []string{"learning", "knowledge", "skills", "growth", "study", "education", "teaching", "development"},
	},
	core.CategoryEntertainment: {
		Name:     "Entertainment",
		Keywords: []string{"fun", "trending", "viral", "creative", "content", "entertainment", "comedy", "music"},
	},
}

// LookupPlatform returns the profile for a platform. Values outside the known
// set map to the Instagram profile, so the lookup never fails.
func LookupPlatform(p core.Platform) PlatformProfile {
	if profile, ok := platformProfiles[p]; ok {
		return profile
	}
	return platformProfiles[core.PlatformInstagram]
}

// LookupCategory returns the profile for a category, falling back to Business.
func LookupCategory(c core.Category) CategoryProfile {
	if profile, ok := categoryProfiles[c]; ok {
		return profile
	}
	return categoryProfiles[core.CategoryBusiness]
}

// AdjustCount clamps a requested hashtag count to the platform's optimal
// range. Inside the range the user's preference wins unchanged; outside it
// the nearer bound wins. This is a deliberate clamp, not a proportional
// rescale.
func AdjustCount(profile PlatformProfile, requested int) int {
	if requested < profile.MinCount {
		return profile.MinCount
	}
	if requested > profile.MaxCount {
		return profile.MaxCount
	}
	return requested
}
