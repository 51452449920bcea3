// Package scraper fetches FFCV result pages and extracts competition records from them.
//
// Three parsers turn the provider's HTML tables into records: ParseStandings for the
// ranking table, ParseRound for the current-round fixture list and ParseCalendar for a
// team's season calendar. The provider's tables have no stable ids or classes, so rows
// are classified by cell count with light content checks, and anything that does not fit
// (headers, separators, section titles, malformed rows) is skipped without error. A page
// with no matching table yields an empty result, never an error.
//
// Parsers are pure functions of the document text and the Highlighter and are safe for
// concurrent use. Fetching is done by a Fetcher: HTTPFetcher for plain GET requests, or
// BrowserFetcher for pages that need a headless Chrome render.
package scraper
