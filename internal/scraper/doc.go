// Package scraper provides HTTP fetching and HTML parsing for the CTFTime
// upcoming-events listing.
//
// The scraper fetches the public event list with a browser User-Agent and
// extracts one event per table row: title, raw start text, a display-only
// duration string, the event URL, and the format label. Fetching makes a
// single attempt and collapses every failure to an empty page; parsing
// skips malformed rows so one bad row never loses the batch.
package scraper
