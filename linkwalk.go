// Package linkwalk provides a bounded-concurrency breadth-first web crawler.
// Starting from a seed URL it fetches pages, extracts anchor targets,
// normalizes and deduplicates them against every URL seen so far, and
// schedules fetches for new links until a global request budget is spent.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, html/, goquery/, sqlite/).
package linkwalk
