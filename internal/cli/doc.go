// Package cli implements the command-line interface for ctftime.
//
// The cli package provides the Cobra-based CLI with support for listing
// upcoming CTF competitions and formatting output (text/JSON). It coordinates
// the scraper, filter, and event packages to fetch and report on events
// starting within the configured window.
package cli
