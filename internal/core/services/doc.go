// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The ranking pipeline itself lives in internal/analysis; services wire it
// to extraction, caching, settings and metrics.
package services
