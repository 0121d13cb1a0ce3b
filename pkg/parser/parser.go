// Package parser turns fetched listing pages into structured surname rows.
//
// Pages carry one results table: a header row followed by one row per
// surname, with the written form in the first cell, the readings in the
// second, and a population indicator in the third. Pagination is expressed
// through links with a page query parameter; a dedicated "last page" link is
// present on fully rendered pagers and absent on truncated ones.
package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"namedic/pkg/errors"
	"namedic/pkg/models"
)

// LastPageLinkLabel is the fixed visible text of the pager's jump-to-end
// link.
const LastPageLinkLabel = "go to last page"

var pageParamPattern = regexp.MustCompile(`page=(\d+)`)

// ParseEntries extracts the surname rows from one listing page, in row
// order. Rows without a written form or with fewer than two cells are
// skipped.
func ParseEntries(html string) ([]models.Entry, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, errors.New(errors.ErrorTypeParsing, "cannot parse page HTML: %v", err)
	}

	entries := []models.Entry{}
	doc.Find("table").First().Find("tr").Each(func(i int, row *goquery.Selection) {
		if i == 0 {
			// header row
			return
		}

		cells := row.Find("td")
		if cells.Length() < 2 {
			return
		}

		kanji := strings.TrimSpace(cells.Eq(0).Text())
		if kanji == "" {
			return
		}

		entries = append(entries, models.Entry{
			Kanji:      kanji,
			Readings:   extractReadings(cells.Eq(1)),
			Population: strings.TrimSpace(cells.Eq(2).Text()),
		})
	})

	return entries, nil
}

// extractReadings pulls the reading list out of the second cell. Cells with
// embedded links yield one reading per link in link order; plain cells are
// split on whitespace runs.
func extractReadings(cell *goquery.Selection) []string {
	links := cell.Find("a")
	if links.Length() > 0 {
		readings := make([]string, 0, links.Length())
		links.Each(func(_ int, link *goquery.Selection) {
			if text := strings.TrimSpace(link.Text()); text != "" {
				readings = append(readings, text)
			}
		})
		return readings
	}

	return strings.Fields(strings.TrimSpace(cell.Text()))
}

// LastPageNumber determines how many result pages exist for a prefix. The
// pager's jump-to-end link is authoritative when present; otherwise the
// highest page parameter among all links wins. A page with no paginated
// links is a single-page result.
func LastPageNumber(html string) (int, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return 0, errors.New(errors.ErrorTypeParsing, "cannot parse page HTML: %v", err)
	}

	lastPage := 0
	doc.Find("a").EachWithBreak(func(_ int, link *goquery.Selection) bool {
		if strings.TrimSpace(link.Text()) != LastPageLinkLabel {
			return true
		}
		href, ok := link.Attr("href")
		if !ok {
			return true
		}
		if n := pageNumberFromHref(href); n > 0 {
			lastPage = n
			return false
		}
		return true
	})
	if lastPage > 0 {
		return lastPage, nil
	}

	doc.Find("a").Each(func(_ int, link *goquery.Selection) {
		href, ok := link.Attr("href")
		if !ok {
			return
		}
		if n := pageNumberFromHref(href); n > lastPage {
			lastPage = n
		}
	})
	if lastPage > 0 {
		return lastPage, nil
	}

	return 1, nil
}

func pageNumberFromHref(href string) int {
	m := pageParamPattern.FindStringSubmatch(href)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}
