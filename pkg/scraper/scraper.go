package scraper

import (
	"time"

	"namedic/pkg/config"
	"namedic/pkg/logger"
	"namedic/pkg/models"
	"namedic/pkg/myoji"
	"namedic/pkg/parser"
	"namedic/pkg/ratelimit"
	"namedic/pkg/retry"
	"namedic/pkg/storage"
	"namedic/pkg/yomi"
)

// PageFetcher fetches one listing page as HTML text.
type PageFetcher interface {
	GetHTML(url string) (string, error)
}

// Scraper drives the fetch, parse, accumulate loop for reading prefixes.
type Scraper struct {
	client      PageFetcher
	storage     *storage.Manager
	config      *config.Config
	logger      logger.Logger
	pagePacer   ratelimit.Pacer
	prefixPacer ratelimit.Pacer
	now         func() time.Time
}

// New creates a Scraper from configuration.
func New(cfg *config.Config) (*Scraper, error) {
	log := logger.GetLogger()

	client := myoji.NewClient(cfg.Source.Timeout, cfg.Source.UserAgent, log)
	if cfg.Retry.MaxAttempts > 1 {
		client.SetRetryConfig(&retry.Config{
			MaxAttempts: cfg.Retry.MaxAttempts,
			Backoff:     &retry.ConstantBackoff{Delay: cfg.Retry.Delay},
			RetryIf:     retry.DefaultRetryIf,
		})
	}

	storageManager, err := storage.NewManager(cfg.Output.Directory)
	if err != nil {
		return nil, err
	}

	return &Scraper{
		client:      client,
		storage:     storageManager,
		config:      cfg,
		logger:      log,
		pagePacer:   ratelimit.NewFixedDelay(cfg.Pacing.PageDelay),
		prefixPacer: ratelimit.NewFixedDelay(cfg.Pacing.PrefixDelay),
		now:         time.Now,
	}, nil
}

// CollectPrefix collects every listing page for one reading prefix and
// persists the aggregate record. The prefix is resolved against the index
// before the first network call, so unknown prefixes never touch the site.
// A fetch failure mid-pagination fails the whole prefix: no partial file is
// written.
func (s *Scraper) CollectPrefix(symbol string) (*models.Record, error) {
	ordinal, err := yomi.Lookup(symbol)
	if err != nil {
		s.logger.WithError(err).WithField("prefix", symbol).Error("unknown reading prefix")
		return nil, err
	}

	s.logger.InfoWithFields("starting prefix collection", map[string]interface{}{
		"prefix":  symbol,
		"ordinal": ordinal,
	})

	html, err := s.client.GetHTML(myoji.YomiListURL(s.config.Source.BaseURL, symbol, 1))
	if err != nil {
		s.logger.WithError(err).WithField("prefix", symbol).Error("failed to fetch first page")
		return nil, err
	}

	entries, err := parser.ParseEntries(html)
	if err != nil {
		return nil, err
	}
	lastPage, err := parser.LastPageNumber(html)
	if err != nil {
		return nil, err
	}

	s.logger.InfoWithFields("first page parsed", map[string]interface{}{
		"prefix":    symbol,
		"entries":   len(entries),
		"last_page": lastPage,
	})

	for page := 2; page <= lastPage; page++ {
		s.pagePacer.Wait()

		html, err := s.client.GetHTML(myoji.YomiListURL(s.config.Source.BaseURL, symbol, page))
		if err != nil {
			s.logger.WithError(err).WithFields(map[string]interface{}{
				"prefix": symbol,
				"page":   page,
			}).Error("failed to fetch page")
			return nil, err
		}

		pageEntries, err := parser.ParseEntries(html)
		if err != nil {
			return nil, err
		}
		// Appended verbatim: rows the source repeats across pages are kept.
		entries = append(entries, pageEntries...)

		s.logger.DebugWithFields("page parsed", map[string]interface{}{
			"prefix":      symbol,
			"page":        page,
			"entries":     len(pageEntries),
			"accumulated": len(entries),
		})
	}

	record := models.NewRecord(symbol, ordinal, entries, s.now())

	path, err := s.storage.SaveRecord(record)
	if err != nil {
		s.logger.WithError(err).WithField("prefix", symbol).Error("failed to save record")
		return nil, err
	}

	s.logger.InfoWithFields("prefix collection completed", map[string]interface{}{
		"prefix":      symbol,
		"total_count": record.TotalCount,
		"pages":       lastPage,
		"file":        path,
	})

	return record, nil
}

// CollectFromURL infers the reading prefix from a listing URL and collects
// it. URLs that are not listing pages fail with a context error before any
// collection is attempted.
func (s *Scraper) CollectFromURL(rawURL string) (*models.Record, error) {
	symbol, err := myoji.InferPrefix(rawURL)
	if err != nil {
		s.logger.WithError(err).WithField("url", rawURL).Error("cannot infer prefix from URL")
		return nil, err
	}
	return s.CollectPrefix(symbol)
}
