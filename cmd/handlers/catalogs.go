package handlers

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"hashly/internal/catalog"
	"hashly/internal/core"
)

// NewPlatformsCmd creates the platforms listing command
func NewPlatformsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "platforms",
		Short: "List supported platforms and their optimal hashtag ranges",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("Supported platforms:")
			fmt.Println()
			for _, p := range core.Platforms() {
				profile := catalog.LookupPlatform(p)
				fmt.Printf("  %-10s %2d-%-2d hashtags  %s\n",
					profile.Name, profile.MinCount, profile.MaxCount, profile.Style)
			}
			fmt.Println()
			fmt.Println("Unknown platform names fall back to Instagram.")
		},
	}
}

// NewCategoriesCmd creates the categories listing command
func NewCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List content categories and their seed keywords",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("Content categories:")
			fmt.Println()
			for _, c := range core.Categories() {
				profile := catalog.LookupCategory(c)
				fmt.Printf("  %-14s %s\n", profile.Name, strings.Join(profile.Keywords, ", "))
			}
			fmt.Println()
			fmt.Println("Unknown category names fall back to Business.")
		},
	}
}
