// Package domain defines the core domain types and sentinel errors.
//
// This package contains concept-oriented files (feed.go, sentiment.go, trending.go,
// anomaly.go, report.go) with shared types only. No implementation code - just the
// contracts the analysis core and its adapters exchange.
package domain
