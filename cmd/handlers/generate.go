package handlers

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"hashly/internal/catalog"
	"hashly/internal/config"
	"hashly/internal/core"
	"hashly/internal/fetch"
	"hashly/internal/generator"
	"hashly/internal/hashtag"
	"hashly/internal/llm"
	"hashly/internal/logger"
)

// NewGenerateCmd creates the generate command
func NewGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [content]",
		Short: "Generate hashtags for content or a webpage",
		Long: `Generate a deduplicated, platform-sized hashtag list for your content.

Content comes from the argument, or from a webpage via --url. The requested
count is clamped to the platform's optimal range (e.g. LinkedIn wants 3-5,
Instagram 8-12); inside the range your count is respected as-is.

Examples:
  hashly generate "launching a startup" --platform LinkedIn --category Business --count 5
  hashly generate --url https://example.com/article --platform Twitter
  hashly generate "coffee" --simple --count 8
  hashly generate "beach day" --plain`,
		Args: cobra.MaximumNArgs(1),
		Run:  generateRun,
	}

	cmd.Flags().String("url", "", "Extract content from this webpage instead of an argument")
	cmd.Flags().StringP("platform", "p", "", "Target platform (Instagram, TikTok, LinkedIn, Twitter, YouTube)")
	cmd.Flags().StringP("category", "c", "", "Content category (Business, Lifestyle, Technology, ...)")
	cmd.Flags().IntP("count", "n", 0, "Preferred hashtag count (clamped to the platform's optimal range)")
	cmd.Flags().Bool("plain", false, "Print only the single-line space-joined hashtags")
	cmd.Flags().Bool("simple", false, "Treat the argument as a bare seed and skip platform/category tuning")
	cmd.Flags().String("model", "", "Override the Gemini model")

	return cmd
}

func generateRun(cmd *cobra.Command, args []string) {
	startTime := time.Now()

	pageURL, _ := cmd.Flags().GetString("url")
	platformName, _ := cmd.Flags().GetString("platform")
	categoryName, _ := cmd.Flags().GetString("category")
	count, _ := cmd.Flags().GetInt("count")
	plain, _ := cmd.Flags().GetBool("plain")
	simple, _ := cmd.Flags().GetBool("simple")
	model, _ := cmd.Flags().GetString("model")

	// Config supplies defaults for anything not flagged
	if platformName == "" {
		platformName = config.GetDefaultPlatform()
	}
	if categoryName == "" {
		categoryName = config.GetDefaultCategory()
	}
	if count <= 0 {
		count = config.GetDefaultCount()
	}

	if len(args) == 0 && pageURL == "" {
		fmt.Fprintf(os.Stderr, "❌ Provide content as an argument or a webpage via --url\n")
		os.Exit(1)
	}
	if len(args) > 0 && pageURL != "" {
		fmt.Fprintf(os.Stderr, "❌ Provide either content or --url, not both\n")
		os.Exit(1)
	}
	if simple && pageURL != "" {
		fmt.Fprintf(os.Stderr, "❌ --simple works on a seed argument, not --url\n")
		os.Exit(1)
	}

	client, err := llm.NewClient(model)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Failed to initialize AI client: %v\n", err)
		fmt.Fprintf(os.Stderr, "💡 Make sure GEMINI_API_KEY is set in your environment or .env file\n")
		os.Exit(1)
	}
	defer client.Close()

	gen := generator.New(client)
	ctx := context.Background()

	var result *generator.Result
	if simple {
		result, err = gen.GenerateSeed(ctx, args[0], count)
	} else {
		var content string
		source := core.SourceManual
		if pageURL != "" {
			if !plain {
				fmt.Printf("🌐 Extracting content from %s\n", pageURL)
			}
			page, ferr := fetch.Extract(pageURL)
			if ferr != nil {
				fmt.Fprintf(os.Stderr, "❌ Failed to extract content: %v\n", ferr)
				os.Exit(1)
			}
			if strings.TrimSpace(page.Content) == "" {
				fmt.Fprintf(os.Stderr, "😅 That page had no usable text — try another URL or pass content directly\n")
				os.Exit(1)
			}
			content = page.Content
			source = core.SourceWebpage
		} else {
			content = args[0]
		}

		result, err = gen.Generate(ctx, core.GenerationRequest{
			Content:        content,
			Platform:       core.ParsePlatform(platformName),
			Category:       core.ParseCategory(categoryName),
			RequestedCount: count,
			Source:         source,
		})
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}

	if result.Empty() {
		fmt.Println("😅 No usable hashtags came back — try rephrasing your content or adjusting the category.")
		return
	}

	if plain {
		fmt.Println(hashtag.Join(result.Hashtags))
		return
	}

	printResult(result, time.Since(startTime))
	logger.Info("Generate completed",
		"request_id", result.ID,
		"hashtags", len(result.Hashtags),
		"duration", time.Since(startTime))
}

func printResult(result *generator.Result, elapsed time.Duration) {
	profile := catalog.LookupPlatform(result.Request.Platform)

	fmt.Println("═══════════════════════════════════════")
	fmt.Printf("🏷️  %d hashtags for %s (%s)\n", len(result.Hashtags), profile.Name, result.Request.Category)
	fmt.Println("═══════════════════════════════════════")

	if result.AdjustedCount != result.Request.RequestedCount {
		fmt.Printf("ℹ️  Count adjusted from %d to %d (optimal for %s: %d-%d)\n",
			result.Request.RequestedCount, result.AdjustedCount,
			profile.Name, profile.MinCount, profile.MaxCount)
	}

	fmt.Println()
	for i, tag := range result.Hashtags {
		fmt.Printf("  %2d. %s\n", i+1, tag)
	}

	fmt.Println()
	fmt.Println("📋 Copy-paste line:")
	fmt.Println(hashtag.Join(result.Hashtags))
	fmt.Printf("\n⏱️  Done in %.1fs\n", elapsed.Seconds())
}
