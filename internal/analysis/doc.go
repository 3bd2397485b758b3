// Package analysis implements the feed scoring core.
//
// The Analyzer is a pure function of (batch, window, now): it filters the batch
// to the requested time window, derives the batch-wide meta flags, scores each
// message's sentiment, ranks trending hashtags, detects behavioral anomalies,
// and computes the engagement index. No I/O, no shared state between calls.
package analysis
