package scraper

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var leadingIntPattern = regexp.MustCompile(`^-?\d+`)

// NormalizeCount returns the leading integer of a cell's first text run.
// Nested markup after the first node (stat badges, percentages) is ignored.
// Returns 0 when there is no leading integer.
func NormalizeCount(cell *goquery.Selection) int {
	return normalizeCountText(cell.Contents().First().Text())
}

func normalizeCountText(text string) int {
	n, ok := leadingInt(text)
	if !ok {
		return 0
	}
	return n
}

// leadingInt parses the longest -?\d+ prefix of the trimmed text
func leadingInt(text string) (int, bool) {
	match := leadingIntPattern.FindString(strings.TrimSpace(text))
	if match == "" {
		return 0, false
	}
	n, err := strconv.Atoi(match)
	if err != nil {
		return 0, false
	}
	return n, true
}

// cellText returns the trimmed text of the i-th cell
func cellText(cells *goquery.Selection, i int) string {
	return strings.TrimSpace(cells.Eq(i).Text())
}
