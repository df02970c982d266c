package handlers

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hashly/internal/config"
)

var cfgFile string

// NewRootCmd creates the hashly root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hashly",
		Short: "Generate platform-optimized hashtags for your content",
		Long: `Hashly - AI Hashtag Generator

Turn a caption, keyword, or webpage into a clean list of hashtags tuned
for the platform and niche you're posting to.

Core workflows:
  • Generate: content (or URL) → deduplicated, platform-sized hashtag list
  • Wizard: interactive three-step flow for picking content and options
  • Catalogs: inspect supported platforms and content categories

Examples:
  # Hashtags for a caption, tuned for Instagram fitness posts
  hashly generate "morning HIIT session at the gym" --platform Instagram --category Fitness

  # Hashtags for an article you're sharing on LinkedIn
  hashly generate --url https://example.com/post --platform LinkedIn --category Business

  # Interactive mode
  hashly wizard`,
		Version: "1.0.0",
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .hashly.yaml)")

	rootCmd.AddCommand(NewGenerateCmd())
	rootCmd.AddCommand(NewWizardCmd())
	rootCmd.AddCommand(NewPlatformsCmd())
	rootCmd.AddCommand(NewCategoriesCmd())

	cobra.OnInitialize(initConfig)

	return rootCmd
}

// initConfig reads in config file and ENV variables
func initConfig() {
	_, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to load config: %v\n", err)
		// Don't exit - allow running with just environment variables
	}
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
