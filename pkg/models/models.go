package models

import "time"

// Entry is one surname row from a listing page: the written form, its
// phonetic readings in page order, and a free-text frequency indicator.
type Entry struct {
	Kanji      string   `json:"kanji"`
	Readings   []string `json:"readings"`
	Population string   `json:"population"`
}

// Record is the aggregate collected for one reading prefix. It is built
// once per run and never mutated after the storage layer writes it.
type Record struct {
	Yomi        string  `json:"yomi"`
	Index       string  `json:"index"`
	TotalCount  int     `json:"totalCount"`
	CollectedAt string  `json:"collectedAt"`
	Entries     []Entry `json:"entries"`
}

// NewRecord builds a Record for one prefix, stamping the collection time in
// ISO-8601 form.
func NewRecord(symbol, ordinal string, entries []Entry, collectedAt time.Time) *Record {
	if entries == nil {
		entries = []Entry{}
	}
	return &Record{
		Yomi:        symbol,
		Index:       ordinal,
		TotalCount:  len(entries),
		CollectedAt: collectedAt.Format(time.RFC3339),
		Entries:     entries,
	}
}

// PrefixResult is the batch outcome for a single prefix: either a count or
// an error marker.
type PrefixResult struct {
	Symbol  string
	Ordinal string
	Count   int
	Err     error
}

// Failed reports whether the prefix ended in an error marker.
func (r PrefixResult) Failed() bool {
	return r.Err != nil
}

// BatchSummary maps each requested prefix to its result and carries the
// grand total across the prefixes that succeeded.
type BatchSummary struct {
	Results    map[string]PrefixResult
	Order      []string
	GrandTotal int
}

// Add records one prefix outcome, preserving request order.
func (s *BatchSummary) Add(result PrefixResult) {
	if s.Results == nil {
		s.Results = make(map[string]PrefixResult)
	}
	s.Results[result.Symbol] = result
	s.Order = append(s.Order, result.Symbol)
	if !result.Failed() {
		s.GrandTotal += result.Count
	}
}
