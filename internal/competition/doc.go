// Package competition defines the records extracted from FFCV result pages.
//
// StandingEntry, Match and MatchdayGroup are created fresh by every extraction and are
// never mutated afterwards. The package also holds the highlight resolver used to flag
// the tracked club, date helpers for the provider's dd/mm/yyyy format, and the snapshot
// diff used to detect newly played results between runs.
package competition
