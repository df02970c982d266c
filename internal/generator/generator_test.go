package generator

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"hashly/internal/core"
)

// mockCompleter implements Completer for tests and records the prompt it saw.
type mockCompleter struct {
	response string
	err      error
	prompt   string
	calls    int
}

func (m *mockCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	m.calls++
	m.prompt = prompt
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

func TestGenerate_LinkedInEndToEnd(t *testing.T) {
	mock := &mockCompleter{response: "#startup #entrepreneur #startup #Leadership #growth #extra"}
	gen := New(mock)

	result, err := gen.Generate(context.Background(), core.GenerationRequest{
		Content:        "launching a startup",
		Platform:       core.PlatformLinkedIn,
		Category:       core.CategoryBusiness,
		RequestedCount: 10,
		Source:         core.SourceManual,
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if result.AdjustedCount != 5 {
		t.Errorf("Expected count adjusted from 10 to 5 for LinkedIn, got %d", result.AdjustedCount)
	}

	want := []string{"#startup", "#entrepreneur", "#Leadership", "#growth", "#extra"}
	if !reflect.DeepEqual(result.Hashtags, want) {
		t.Errorf("Hashtags = %v, want %v", result.Hashtags, want)
	}

	if !strings.Contains(mock.prompt, "LinkedIn") {
		t.Error("Prompt should name the target platform")
	}
	if !strings.Contains(mock.prompt, "exactly 5") {
		t.Error("Prompt should carry the adjusted count, not the requested one")
	}
	if result.ID == "" {
		t.Error("Result should carry a request ID")
	}
}

func TestGenerate_EmptyContent(t *testing.T) {
	mock := &mockCompleter{response: "#whatever"}
	gen := New(mock)

	_, err := gen.Generate(context.Background(), core.GenerationRequest{
		Content:        "   \n  ",
		RequestedCount: 5,
	})
	if err == nil {
		t.Fatal("Expected error for empty content")
	}
	if mock.calls != 0 {
		t.Error("Gateway must not be called for empty content")
	}
}

func TestGenerate_GatewayErrorPropagates(t *testing.T) {
	gatewayErr := errors.New("service unavailable")
	mock := &mockCompleter{err: gatewayErr}
	gen := New(mock)

	_, err := gen.Generate(context.Background(), core.GenerationRequest{
		Content:        "some content",
		Platform:       core.PlatformTwitter,
		RequestedCount: 2,
	})
	if !errors.Is(err, gatewayErr) {
		t.Errorf("Expected gateway error to propagate unchanged, got %v", err)
	}
	if mock.calls != 1 {
		t.Errorf("Expected exactly one gateway call (no retries), got %d", mock.calls)
	}
}

func TestGenerate_BlankResponseIsEmptyResult(t *testing.T) {
	mock := &mockCompleter{response: "   \n  "}
	gen := New(mock)

	result, err := gen.Generate(context.Background(), core.GenerationRequest{
		Content:        "quiet content",
		Platform:       core.PlatformInstagram,
		Category:       core.CategoryLifestyle,
		RequestedCount: 10,
	})
	if err != nil {
		t.Fatalf("Blank response must not be an error, got %v", err)
	}
	if !result.Empty() {
		t.Errorf("Expected empty result, got %v", result.Hashtags)
	}
}

func TestGenerate_ProseWithoutTagsIsEmptyResult(t *testing.T) {
	mock := &mockCompleter{response: "... !!! ???"}
	gen := New(mock)

	result, err := gen.Generate(context.Background(), core.GenerationRequest{
		Content:        "content",
		Platform:       core.PlatformTwitter,
		RequestedCount: 2,
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if !result.Empty() {
		t.Errorf("Expected empty result for untaggable prose, got %v", result.Hashtags)
	}
}

func TestGenerateSeed(t *testing.T) {
	mock := &mockCompleter{response: "#coffee #espresso #coffee #barista"}
	gen := New(mock)

	result, err := gen.GenerateSeed(context.Background(), "coffee", 3)
	if err != nil {
		t.Fatalf("GenerateSeed failed: %v", err)
	}

	want := []string{"#coffee", "#espresso", "#barista"}
	if !reflect.DeepEqual(result.Hashtags, want) {
		t.Errorf("Hashtags = %v, want %v", result.Hashtags, want)
	}
	if !strings.Contains(mock.prompt, `Seed: "coffee"`) {
		t.Error("Seed prompt should quote the seed")
	}
}

func TestGenerateSeed_Validation(t *testing.T) {
	gen := New(&mockCompleter{})

	if _, err := gen.GenerateSeed(context.Background(), "", 5); err == nil {
		t.Error("Expected error for empty seed")
	}
	if _, err := gen.GenerateSeed(context.Background(), "coffee", 0); err == nil {
		t.Error("Expected error for non-positive count")
	}
}
