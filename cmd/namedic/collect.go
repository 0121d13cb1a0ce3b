package main

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"namedic/pkg/config"
	"namedic/pkg/logger"
	"namedic/pkg/models"
	"namedic/pkg/scraper"
	"namedic/pkg/ui"
)

var (
	outputDir   string
	pageDelay   time.Duration
	maxAttempts int
)

// collectCmd represents the collect command
var collectCmd = &cobra.Command{
	Use:   "collect <prefix|listing-url>",
	Short: "Collect all surname entries for one reading prefix",
	Long: `Collect every listing page for a single reading prefix and write the
aggregate record as <ordinal>_<prefix>.json.

The argument is either a bare prefix symbol (e.g. あ) or a listing URL,
from which the prefix is inferred. A URL that is not a reading listing
page is rejected without fetching anything.`,
	Example: `  # Collect one prefix
  namedic collect あ

  # Collect the prefix of a listing page URL
  namedic collect https://myoji.namedic.jp/sei/yomi_list/%E3%81%82

  # Slow down page fetches
  namedic collect あ --page-delay 1s`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		runCollect(cmd, args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(collectCmd)

	collectCmd.Flags().StringVarP(&outputDir, "output", "o", "", "output directory for record files")
	collectCmd.Flags().DurationVar(&pageDelay, "page-delay", 300*time.Millisecond, "delay between page fetches")
	collectCmd.Flags().IntVar(&maxAttempts, "max-attempts", 1, "fetch attempts per page (1 disables retries)")
}

func runCollect(cmd *cobra.Command, target string) {
	flags := map[string]interface{}{"output": outputDir}
	if cmd.Flags().Changed("page-delay") {
		flags["page-delay"] = pageDelay
	}
	if cmd.Flags().Changed("max-attempts") {
		flags["max-attempts"] = maxAttempts
	}
	cfg := loadConfig(flags)

	s, err := scraper.New(cfg)
	if err != nil {
		ui.PrintError("Failed to initialize collector", err.Error())
		os.Exit(1)
	}

	record, err := collectTarget(s, target)
	if err != nil {
		ui.PrintError("Collection failed", err.Error())
		os.Exit(1)
	}

	ui.PrintInfo("Prefix", record.Yomi)
	ui.PrintInfo("Entries", strconv.Itoa(record.TotalCount))
	ui.PrintSuccess("Collection completed")
}

func collectTarget(s *scraper.Scraper, target string) (*models.Record, error) {
	if strings.Contains(target, "://") {
		return s.CollectFromURL(target)
	}
	return s.CollectPrefix(target)
}

// loadConfig builds the effective configuration shared by the commands.
func loadConfig(flags map[string]interface{}) *config.Config {
	if logLevel != "info" {
		flags["log-level"] = logLevel
	}

	cfg, err := config.Load(configFile, flags)
	if err != nil {
		ui.PrintError("Failed to load configuration", err.Error())
		os.Exit(1)
	}

	if err := logger.Initialize(&cfg.Logging); err != nil {
		ui.PrintError("Failed to initialize logger", err.Error())
		os.Exit(1)
	}

	return cfg
}
