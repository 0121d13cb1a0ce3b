package ui

import (
	"errors"
	"strings"
	"testing"

	"namedic/pkg/models"
)

func TestWriteSummary(t *testing.T) {
	var summary models.BatchSummary
	summary.Add(models.PrefixResult{Symbol: "あ", Ordinal: "01", Count: 321})
	summary.Add(models.PrefixResult{Symbol: "い", Ordinal: "02", Err: errors.New("server_error error (code 503): fetch failed")})
	summary.Add(models.PrefixResult{Symbol: "ぴ", Count: 4})

	var buf strings.Builder
	WriteSummary(&buf, &summary)
	out := buf.String()

	if !strings.Contains(out, "01") || !strings.Contains(out, "321") {
		t.Errorf("summary missing successful row:\n%s", out)
	}
	if !strings.Contains(out, "ERROR") {
		t.Errorf("summary missing error marker:\n%s", out)
	}
	if !strings.Contains(out, "--") {
		t.Errorf("summary missing ordinal placeholder:\n%s", out)
	}
	if !strings.Contains(out, "total: 325 entries across 3 prefixes") {
		t.Errorf("summary missing grand total:\n%s", out)
	}

	// Rows appear in request order.
	if strings.Index(out, "あ") > strings.Index(out, "い") {
		t.Errorf("rows out of request order:\n%s", out)
	}
}
