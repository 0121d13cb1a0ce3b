package ui

import (
	"fmt"
	"io"

	"namedic/pkg/models"
)

// WriteSummary renders the batch outcome as a human-readable table: one row
// per prefix in request order, the count or an error marker, and the grand
// total across successful prefixes.
func WriteSummary(w io.Writer, summary *models.BatchSummary) {
	fmt.Fprintln(w, "----------------------------------------")
	fmt.Fprintf(w, "%-8s %-8s %s\n", "index", "prefix", "entries")
	fmt.Fprintln(w, "----------------------------------------")

	for _, symbol := range summary.Order {
		result := summary.Results[symbol]
		ordinal := result.Ordinal
		if ordinal == "" {
			ordinal = "--"
		}
		if result.Failed() {
			fmt.Fprintf(w, "%-8s %-8s ERROR (%v)\n", ordinal, symbol, result.Err)
			continue
		}
		fmt.Fprintf(w, "%-8s %-8s %d\n", ordinal, symbol, result.Count)
	}

	fmt.Fprintln(w, "----------------------------------------")
	fmt.Fprintf(w, "total: %d entries across %d prefixes\n", summary.GrandTotal, len(summary.Order))
}
