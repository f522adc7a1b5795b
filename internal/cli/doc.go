// Package cli defines the campus-events command tree: scrape pulls the two
// calendar pages into the store, enrich joins weather onto stored event
// dates, and serve exposes both over HTTP.
package cli
