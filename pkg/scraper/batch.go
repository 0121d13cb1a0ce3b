package scraper

import (
	"namedic/pkg/models"
	"namedic/pkg/yomi"
)

// CollectMany collects the given prefixes strictly in order, one at a time,
// waiting the prefix delay between consecutive prefixes but never after the
// last. A failing prefix is recorded as an error marker and does not stop
// the rest of the batch. The grand total counts only prefixes that
// succeeded.
func (s *Scraper) CollectMany(symbols []string) *models.BatchSummary {
	summary := &models.BatchSummary{}

	for i, symbol := range symbols {
		if i > 0 {
			s.prefixPacer.Wait()
		}

		// The ordinal is display metadata; unknown prefixes keep it empty.
		ordinal, _ := yomi.Lookup(symbol)

		record, err := s.CollectPrefix(symbol)
		if err != nil {
			s.logger.WithError(err).WithField("prefix", symbol).Warn("prefix failed, continuing batch")
			summary.Add(models.PrefixResult{Symbol: symbol, Ordinal: ordinal, Err: err})
			continue
		}

		summary.Add(models.PrefixResult{
			Symbol:  symbol,
			Ordinal: record.Index,
			Count:   record.TotalCount,
		})
	}

	s.logger.InfoWithFields("batch completed", map[string]interface{}{
		"prefixes":    len(symbols),
		"grand_total": summary.GrandTotal,
	})

	return summary
}

// CollectAll collects every registered prefix in index order.
func (s *Scraper) CollectAll() *models.BatchSummary {
	return s.CollectMany(yomi.All())
}
