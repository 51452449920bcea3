// Package server exposes the parsed competition records over HTTP.
//
// Routes:
//
//	GET /api/clasificacion     standings as a JSON array
//	GET /api/jornada           current round as a JSON array
//	GET /api/calendario        season calendar as a JSON array of matchday groups
//	GET /api/calendario.ics    tracked team's fixtures as iCalendar
//	GET /api/metrics           fetch and request metrics
//	GET /healthz               liveness probe
//	GET /                      embedded web UI
//
// Every request fetches the provider page anew; nothing is cached. A failed fetch
// answers 500 with {"error": "..."} and never a partial result.
package server
