// Package hashtag turns raw model output into a clean, ordered hashtag list.
package hashtag

import "strings"

// Normalize tokenizes free-form generated text and returns up to maxCount
// unique hashtags in first-seen order.
//
// Per token: a single leading '#' is enforced, every character after it that
// is not ASCII alphanumeric or underscore is dropped, and tokens that end up
// as a bare '#' are discarded. Deduplication is an exact string match, so
// "#Fitness" and "#fitness" are distinct tokens.
//
// Normalize never fails: empty, whitespace-only, or fully unusable input
// yields an empty list, which callers should treat as "nothing usable came
// back", not as an error.
func Normalize(raw string, maxCount int) []string {
	if maxCount <= 0 {
		return nil
	}

	tokens := strings.Fields(strings.ReplaceAll(raw, "\n", " "))
	cleaned := make([]string, 0, maxCount)
	seen := make(map[string]struct{}, len(tokens))

	for _, token := range tokens {
		tok := strings.TrimSpace(token)
		if tok == "" {
			continue
		}
		if !strings.HasPrefix(tok, "#") {
			tok = "#" + strings.TrimLeft(tok, "#")
		}

		var b strings.Builder
		b.Grow(len(tok))
		b.WriteByte('#')
		for _, r := range tok[1:] {
			if isTagRune(r) {
				b.WriteRune(r)
			}
		}
		tok = b.String()

		if len(tok) <= 1 {
			continue
		}
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		cleaned = append(cleaned, tok)
		if len(cleaned) >= maxCount {
			break
		}
	}

	return cleaned
}

// isTagRune reports whether r may appear in a hashtag body.
func isTagRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '_':
		return true
	}
	return false
}

// Join renders a hashtag list as the single-line form users paste into a post.
func Join(tags []string) string {
	return strings.Join(tags, " ")
}
