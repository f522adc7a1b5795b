// Package event provides the event record model and the free-text heuristics
// used to pull dates and times out of scraped calendar fragments.
//
// The extractors are best-effort by design: campus calendar pages carry free
// text, not structured markup, so each extractor evaluates an ordered list of
// pattern rules and the first match wins. A fragment that yields no date still
// produces a record with an empty date rather than being dropped.
package event
