// Package fetch extracts hashtag-worthy text from webpages. The assembled
// content (title, description, headings, lead paragraphs) feeds the prompt
// builder the same way manually typed content does.
package fetch

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	// userAgent mimics a desktop browser; some sites refuse default Go clients.
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

	maxHeadings      = 3   // Headings folded into "Key topics"
	maxParagraphs    = 3   // Substantial paragraphs harvested
	minParagraphLen  = 50  // Shorter paragraphs are navigation noise
	maxHeadingLen    = 200 // Longer "headings" are usually styled body text
	maxContentLength = 500 // Cap on combined paragraph text
)

var httpClient = &http.Client{Timeout: 10 * time.Second}

// PageContent holds the pieces extracted from a webpage plus the assembled
// text handed to the prompt builder.
type PageContent struct {
	URL         string
	Title       string
	Description string
	Headings    []string
	Content     string // "Title: ... | Description: ... | Key topics: ... | Content: ..."
}

// NormalizeURL prepends https:// when the scheme is missing and validates the
// result. It returns the usable URL or an error for unparseable input.
func NormalizeURL(rawURL string) (string, error) {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return "", fmt.Errorf("empty URL")
	}
	if !strings.HasPrefix(trimmed, "http://") && !strings.HasPrefix(trimmed, "https://") {
		trimmed = "https://" + trimmed
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("invalid URL %q: %w", rawURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return "", fmt.Errorf("invalid URL %q: missing scheme or host", rawURL)
	}
	return trimmed, nil
}

// Extract fetches a webpage and distills it into content suitable for
// hashtag generation.
func Extract(rawURL string) (*PageContent, error) {
	pageURL, err := NormalizeURL(rawURL)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", pageURL, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch URL %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch URL %s: status code %d", pageURL, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML from %s: %w", pageURL, err)
	}

	page := extractFromDocument(doc)
	page.URL = pageURL
	return page, nil
}

// extractFromDocument pulls the title, meta description, headings, and lead
// paragraphs out of a parsed page and assembles the combined content string.
func extractFromDocument(doc *goquery.Document) *PageContent {
	page := &PageContent{}

	page.Title = strings.TrimSpace(doc.Find("head title").First().Text())

	desc, ok := doc.Find("meta[name='description']").Attr("content")
	if !ok {
		desc, _ = doc.Find("meta[property='og:description']").Attr("content")
	}
	page.Description = strings.TrimSpace(desc)

	doc.Find("h1, h2, h3").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := strings.TrimSpace(s.Text())
		if text != "" && len(text) < maxHeadingLen {
			page.Headings = append(page.Headings, text)
		}
		return len(page.Headings) < maxHeadings
	})

	var paragraphs []string
	doc.Find("p").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := strings.TrimSpace(s.Text())
		if len(text) > minParagraphLen {
			paragraphs = append(paragraphs, text)
		}
		return len(paragraphs) < maxParagraphs
	})

	var parts []string
	if page.Title != "" {
		parts = append(parts, "Title: "+page.Title)
	}
	if page.Description != "" {
		parts = append(parts, "Description: "+page.Description)
	}
	if len(page.Headings) > 0 {
		parts = append(parts, "Key topics: "+strings.Join(page.Headings, ", "))
	}
	if len(paragraphs) > 0 {
		combined := strings.Join(paragraphs, " ")
		if len(combined) > maxContentLength {
			combined = combined[:maxContentLength] + "..."
		}
		parts = append(parts, "Content: "+combined)
	}
	page.Content = strings.Join(parts, " | ")

	return page
}
