package main

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"

	"namedic/pkg/config"
	"namedic/pkg/logger"
	"namedic/pkg/scraper"
	"namedic/pkg/ui"
)

var (
	configFile  = flag.String("config", "", "Path to configuration file")
	outputDir   = flag.String("output", "", "Output directory for record files")
	pageDelay   = flag.Duration("page-delay", 300*time.Millisecond, "Delay between page fetches")
	prefixDelay = flag.Duration("prefix-delay", 1500*time.Millisecond, "Delay between prefixes")
	collectAll  = flag.Bool("all", false, "Collect every registered prefix")
)

func main() {
	flag.Parse()

	ui.PrintBanner()

	prefixes := flag.Args()
	if *collectAll {
		prefixes = nil
	} else if len(prefixes) == 0 {
		ui.PrintError("Usage: namedic [flags] <prefix> [prefix...]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	flags := map[string]interface{}{}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "page-delay":
			flags["page-delay"] = *pageDelay
		case "prefix-delay":
			flags["prefix-delay"] = *prefixDelay
		case "output":
			flags["output"] = *outputDir
		}
	})

	cfg, err := config.Load(*configFile, flags)
	if err != nil {
		ui.PrintError("Failed to load configuration", err.Error())
		os.Exit(1)
	}

	logger.Initialize(&cfg.Logging)
	logger.GetLogger().WithField("version", "1.0").Info("namedic collector starting")

	s, err := scraper.New(cfg)
	if err != nil {
		ui.PrintError("Failed to initialize collector", err.Error())
		os.Exit(1)
	}

	if *collectAll {
		ui.WriteSummary(os.Stdout, s.CollectAll())
		return
	}
	if len(prefixes) > 1 {
		ui.WriteSummary(os.Stdout, s.CollectMany(prefixes))
		return
	}

	target := strings.TrimSpace(prefixes[0])
	record, err := s.CollectPrefix(target)
	if err != nil {
		logger.GetLogger().WithError(err).WithField("prefix", target).Error("Collection failed")
		ui.PrintError("Collection failed", err.Error())
		os.Exit(1)
	}

	ui.PrintInfo("Prefix", record.Yomi)
	ui.PrintInfo("Entries", strconv.Itoa(record.TotalCount))
	ui.PrintSuccess("Collection completed")
}
