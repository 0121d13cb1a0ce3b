// Package scraper orchestrates surname collection from the directory site.
//
// For one reading prefix the collection loop is: resolve the prefix ordinal,
// fetch the first listing page, read the pager to learn the last page
// number, then fetch pages 2..N in increasing order with a fixed delay
// before each, concatenating the parsed rows. The finished aggregate is
// written as one JSON file per prefix.
//
// All network activity is strictly sequential. Pages within a prefix are
// fetched in page order; prefixes within a batch run in caller order with a
// longer delay between them. A prefix that fails mid-pagination produces no
// output file, and in a batch its failure is recorded without stopping the
// remaining prefixes.
//
// Usage:
//
//	cfg := config.DefaultConfig()
//	s, err := scraper.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	record, err := s.CollectPrefix("あ")
//
//	summary := s.CollectMany([]string{"あ", "い", "う"})
package scraper
