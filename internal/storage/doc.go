// Package storage provides JSON-based persistence for result snapshots.
//
// A snapshot records the scores of the tracked team's played matches as seen on the
// last notify run, so the next run only reports what changed. Each snapshot lives in
// its own file (snapshot_<name>.json) under the data directory, which defaults to
// ~/.local/share/ffcv-tracker/.
package storage
