package scraper

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/campusconnect/campus-events/internal/event"
)

// Candidate is one raw text fragment suspected of describing an event,
// with the anchor link it came from when there was one.
type Candidate struct {
	Text string
	Link string
}

var (
	monthDayRe      = regexp.MustCompile(event.MonthPattern + `\s+\d{1,2}`)
	monthDayLooseRe = regexp.MustCompile(`(?i)` + event.MonthPattern + `\s+\d{1,2}`)
	slashDateRe     = regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{4}`)
	clockRe         = regexp.MustCompile(`\d{1,2}:\d{2}`)
)

// findContainer returns the first selector that matches, falling back to the
// whole document when none do.
func findContainer(doc *goquery.Document, selectors ...string) *goquery.Selection {
	for _, sel := range selectors {
		if found := doc.Find(sel).First(); found.Length() > 0 {
			return found
		}
	}
	return doc.Selection
}

// selectAcademicCandidates scans the academic calendar page. Text blocks are
// kept when they carry a month-day phrase, a slash date, or an "@" (the page
// writes "7:00 pm @ Haid Theater", so "@" is a cheap proxy for an event
// line). No links are captured; academic entries are plain text.
func selectAcademicCandidates(doc *goquery.Document) []Candidate {
	container := findContainer(doc, "div.region-content", "div#content")

	var candidates []Candidate
	container.Find("p, li, div").Each(func(_ int, sel *goquery.Selection) {
		txt := event.Normalize(sel.Text())
		if txt == "" {
			return
		}
		if monthDayRe.MatchString(txt) || slashDateRe.MatchString(txt) || strings.Contains(txt, "@") {
			candidates = append(candidates, Candidate{Text: txt})
		}
	})
	return candidates
}

// selectAthleticsCandidates scans the athletics calendar page. The first
// pass walks anchors: an anchor whose own text looks time- or date-like is
// kept with its href, otherwise the anchor's parent text is checked (game
// links often say just the opponent, with the time in the surrounding cell).
// When the anchor pass comes up empty the paragraph fallback runs with the
// same heuristics and no links.
func selectAthleticsCandidates(doc *goquery.Document) []Candidate {
	container := findContainer(doc, "div#calendar", "div.calendar")

	var candidates []Candidate
	container.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		txt := event.Normalize(sel.Text())
		if txt == "" {
			return
		}
		if clockRe.MatchString(txt) || slashDateRe.MatchString(txt) || monthDayLooseRe.MatchString(txt) {
			candidates = append(candidates, Candidate{Text: txt, Link: href})
			return
		}
		parentTxt := event.Normalize(sel.Parent().Text())
		if parentTxt != "" && (clockRe.MatchString(parentTxt) || monthDayLooseRe.MatchString(parentTxt)) {
			candidates = append(candidates, Candidate{Text: parentTxt, Link: href})
		}
	})

	if len(candidates) > 0 {
		return candidates
	}

	container.Find("p, li, div").Each(func(_ int, sel *goquery.Selection) {
		txt := event.Normalize(sel.Text())
		if txt == "" {
			return
		}
		if clockRe.MatchString(txt) || monthDayLooseRe.MatchString(txt) || slashDateRe.MatchString(txt) {
			candidates = append(candidates, Candidate{Text: txt})
		}
	})
	return candidates
}
