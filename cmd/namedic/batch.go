package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"namedic/pkg/scraper"
	"namedic/pkg/ui"
	"namedic/pkg/yomi"
)

var (
	batchOutputDir   string
	batchPageDelay   time.Duration
	batchPrefixDelay time.Duration
	batchAll         bool
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch [prefixes...]",
	Short: "Collect a list of reading prefixes sequentially",
	Long: `Collect several reading prefixes one after another, waiting the prefix
delay between them. A prefix that fails is reported in the summary table
and does not stop the rest of the batch.

With --all the full 63-prefix index is collected in index order.`,
	Example: `  # Collect three prefixes
  namedic batch あ い う

  # Collect everything, gently
  namedic batch --all --page-delay 500ms --prefix-delay 3s`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		runBatch(cmd, args)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVarP(&batchOutputDir, "output", "o", "", "output directory for record files")
	batchCmd.Flags().DurationVar(&batchPageDelay, "page-delay", 300*time.Millisecond, "delay between page fetches")
	batchCmd.Flags().DurationVar(&batchPrefixDelay, "prefix-delay", 1500*time.Millisecond, "delay between prefixes")
	batchCmd.Flags().BoolVar(&batchAll, "all", false, "collect every registered prefix")
}

func runBatch(cmd *cobra.Command, prefixes []string) {
	if batchAll {
		prefixes = yomi.All()
	}
	if len(prefixes) == 0 {
		ui.PrintError("No prefixes given", "pass prefix symbols or use --all")
		os.Exit(1)
	}

	flags := map[string]interface{}{"output": batchOutputDir}
	if cmd.Flags().Changed("page-delay") {
		flags["page-delay"] = batchPageDelay
	}
	if cmd.Flags().Changed("prefix-delay") {
		flags["prefix-delay"] = batchPrefixDelay
	}
	cfg := loadConfig(flags)

	s, err := scraper.New(cfg)
	if err != nil {
		ui.PrintError("Failed to initialize collector", err.Error())
		os.Exit(1)
	}

	summary := s.CollectMany(prefixes)
	ui.WriteSummary(os.Stdout, summary)

	for _, result := range summary.Results {
		if result.Failed() {
			os.Exit(1)
		}
	}
	ui.PrintSuccess("Batch completed")
}
