// Package app provides the application service layer.
//
// Orchestrates the analyze use case: clock injection, report-cache lookup,
// singleflight collapse of identical concurrent batches, and metrics.
// Sits between the HTTP handlers and the analysis core.
package app
