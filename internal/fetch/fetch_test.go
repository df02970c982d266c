package fetch

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const articleHTML = `<!DOCTYPE html>
<html>
<head>
	<title>  Go Concurrency Patterns  </title>
	<meta name="description" content="A practical tour of goroutines and channels.">
</head>
<body>
	<h1>Go Concurrency Patterns</h1>
	<h2>Pipelines</h2>
	<h3>Fan-out, fan-in</h3>
	<h2>This heading should be ignored because there are already three</h2>
	<p>short</p>
	<p>Goroutines are lightweight threads managed by the Go runtime, and they make concurrent programming approachable.</p>
	<p>Channels connect goroutines together, letting one goroutine send values to another without explicit locking anywhere.</p>
	<p>Pipelines compose these primitives into streaming computations that are easy to reason about and to cancel cleanly.</p>
	<p>This fourth substantial paragraph should not be harvested because only three are kept for prompt brevity reasons.</p>
</body>
</html>`

func TestExtract(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") == "" || strings.HasPrefix(r.Header.Get("User-Agent"), "Go-http-client") {
			t.Error("Expected a browser User-Agent header")
		}
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(articleHTML))
	}))
	defer server.Close()

	page, err := Extract(server.URL)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if page.Title != "Go Concurrency Patterns" {
		t.Errorf("Title = %q, want trimmed title", page.Title)
	}
	if page.Description != "A practical tour of goroutines and channels." {
		t.Errorf("Description = %q", page.Description)
	}
	if len(page.Headings) != 3 {
		t.Errorf("Expected 3 headings, got %d: %v", len(page.Headings), page.Headings)
	}

	for _, fragment := range []string{
		"Title: Go Concurrency Patterns",
		"Description: A practical tour",
		"Key topics: Go Concurrency Patterns, Pipelines, Fan-out, fan-in",
		"Content: Goroutines are lightweight",
	} {
		if !strings.Contains(page.Content, fragment) {
			t.Errorf("Assembled content missing %q\ngot: %s", fragment, page.Content)
		}
	}
	if strings.Contains(page.Content, "fourth substantial paragraph") {
		t.Error("Only the first three substantial paragraphs should be harvested")
	}
	if !strings.Contains(page.Content, " | ") {
		t.Error("Assembled content should join parts with ' | '")
	}
}

func TestExtract_OGDescriptionFallback(t *testing.T) {
	html := `<html><head><title>T</title>
		<meta property="og:description" content="From OpenGraph."></head>
		<body><p>` + strings.Repeat("content ", 10) + `</p></body></html>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(html))
	}))
	defer server.Close()

	page, err := Extract(server.URL)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if page.Description != "From OpenGraph." {
		t.Errorf("Expected og:description fallback, got %q", page.Description)
	}
}

func TestExtract_ContentCapped(t *testing.T) {
	long := strings.Repeat("word ", 200)
	html := "<html><body><p>" + long + "</p><p>" + long + "</p><p>" + long + "</p></body></html>"

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(html))
	}))
	defer server.Close()

	page, err := Extract(server.URL)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if !strings.HasSuffix(page.Content, "...") {
		t.Error("Over-long paragraph text should be capped with an ellipsis")
	}
	if len(page.Content) > maxContentLength+100 {
		t.Errorf("Assembled content unexpectedly long: %d bytes", len(page.Content))
	}
}

func TestExtract_StatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	_, err := Extract(server.URL)
	if err == nil {
		t.Fatal("Expected error for 404 response")
	}
	if !strings.Contains(err.Error(), "status code 404") {
		t.Errorf("Expected status code in error, got %v", err)
	}
}

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"already https", "https://example.com/post", "https://example.com/post", false},
		{"already http", "http://example.com", "http://example.com", false},
		{"scheme added", "example.com/post", "https://example.com/post", false},
		{"surrounding whitespace", "  example.com  ", "https://example.com", false},
		{"empty", "", "", true},
		{"whitespace only", "   ", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeURL(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Errorf("NormalizeURL(%q) expected error", tt.raw)
				}
				return
			}
			if err != nil {
				t.Fatalf("NormalizeURL(%q) failed: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("NormalizeURL(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
