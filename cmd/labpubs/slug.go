// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/labpubs/internal/slug"
)

var slugCmd = &cobra.Command{
	Use:   "slug [name...]",
	Short: "Print the URL slug for an author name",
	Long: `Slug converts an author name to the lowercase, accent-free,
hyphen-separated form used in website URLs (e.g. "José Álvarez" becomes
"jose-alvarez").`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(slug.Make(strings.Join(args, " ")))
	},
}

func init() {
	rootCmd.AddCommand(slugCmd)
}
