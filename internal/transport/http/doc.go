// Package http serves computed spectra as JSON for chart front ends.
//
// Routes:
//
//	GET /api/spectrum/{symbol}?years=3&window=480
//	GET /healthz
//	GET /metrics
package http
