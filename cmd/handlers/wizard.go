package handlers

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hashly/internal/generator"
	"hashly/internal/llm"
	"hashly/internal/tui"
)

// NewWizardCmd creates the interactive wizard command
func NewWizardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wizard",
		Short: "Interactive three-step hashtag wizard",
		Long: `Walk through hashtag generation interactively:

  1. Enter your content (or paste a webpage URL)
  2. Pick platform, category, and hashtag count
  3. Generate and review your hashtags`,
		Run: wizardRun,
	}

	cmd.Flags().String("model", "", "Override the Gemini model")

	return cmd
}

func wizardRun(cmd *cobra.Command, args []string) {
	model, _ := cmd.Flags().GetString("model")

	client, err := llm.NewClient(model)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Failed to initialize AI client: %v\n", err)
		fmt.Fprintf(os.Stderr, "💡 Make sure GEMINI_API_KEY is set in your environment or .env file\n")
		os.Exit(1)
	}
	defer client.Close()

	if err := tui.Run(generator.New(client)); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}
