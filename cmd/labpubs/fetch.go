// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/labpubs/internal/pubs"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [pid]",
	Short: "Fetch and print the publication list",
	Long: `Fetch downloads the researcher's BibTeX record from DBLP, drops
preprints and entries older than the cutoff year, and prints the rest
newest-first. The PID comes from the argument, the config file, or the
LABPUBS_FETCH_PID environment variable.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().Int("min-year", 0, "oldest publication year to keep (default from config)")
	fetchCmd.Flags().Bool("json", false, "output as JSON")
	fetchCmd.Flags().Bool("yaml", false, "output as YAML")
	fetchCmd.Flags().Bool("bibtex", false, "output the cleaned BibTeX entries")

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	if len(args) == 1 {
		cfg.Fetch.PID = args[0]
	}
	if cfg.Fetch.PID == "" {
		return fmt.Errorf("no DBLP PID given (argument, config file, or LABPUBS_FETCH_PID)")
	}
	if minYear, _ := cmd.Flags().GetInt("min-year"); minYear != 0 {
		cfg.Fetch.MinYear = minYear
	}

	logger := newLogger(cmd)
	src := &pubs.DBLPSource{Client: &http.Client{Timeout: cfg.Fetch.Timeout}}
	svc := pubs.NewService(src, cfg.Fetch, logger)

	list := svc.Publications(cmd.Context())

	asJSON, _ := cmd.Flags().GetBool("json")
	asYAML, _ := cmd.Flags().GetBool("yaml")
	asBibTeX, _ := cmd.Flags().GetBool("bibtex")
	switch {
	case asJSON:
		return pubs.FormatJSON(list, os.Stdout)
	case asYAML:
		return pubs.FormatYAML(list, os.Stdout)
	case asBibTeX:
		pubs.FormatBibTeX(list, os.Stdout)
	default:
		pubs.FormatTable(list, os.Stdout)
	}
	return nil
}
