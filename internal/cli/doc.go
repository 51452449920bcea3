// Package cli implements the command-line interface for ffcv-tracker.
//
// The cli package provides the Cobra-based CLI: serve runs the HTTP API and web UI,
// standings, round and calendar print the parsed provider pages (text, JSON or ICS),
// summary reports the tracked team's position and fixtures, notify posts newly
// played results and persists a snapshot so each result is announced once, and
// remind announces fixtures a set number of days ahead.
package cli
