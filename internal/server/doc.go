// Package server exposes the scorer over JSON HTTP.
//
// Routes:
//
//	GET  /healthz      liveness and artifact fingerprints
//	POST /v1/score     score {"url": "..."} or {"urls": ["...", ...]}
//	POST /v1/report    acknowledge {"url": "..."}
//
// Blank input is answered with 422 and the same warning the CLI prints.
// The server never fetches the submitted URLs.
package server
