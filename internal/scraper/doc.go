// Package scraper fetches the two campus calendar pages and extracts event
// candidates from their HTML.
//
// Neither page exposes structured event markup, so extraction is heuristic:
// the scraper locates a content container from a ranked selector list, then
// keeps text blocks that look event-like (a month-day phrase, a slash date,
// a clock time, or an "@" separating time from location). The athletics page
// gets a two-pass treatment: anchors first, with their links, then a
// paragraph fallback when the anchor pass finds nothing.
package scraper
