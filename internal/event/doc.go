// Package event provides the CTF event value type and start-date resolution.
//
// CTFTime prints event start times as loosely-formatted snippets such as
// "20 Aug., 10:00 UTC" or "20 Aug. 2025, 10:00 UTC". The package extracts
// day, month, and optional year from those snippets and resolves yearless
// ones against an injected "today", rolling already-passed dates forward to
// the next year so that recurring listings land on the right side of the
// calendar.
package event
