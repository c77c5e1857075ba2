// Package filmoscope extracts structured film records from French Wikipedia
// dumps. It classifies pages, pattern-matches typed fields out of film
// infoboxes, and keeps an incrementally-updated SQLite store synchronized
// across repeated dump passes using content fingerprints.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency or concern (e.g., sqlite/, dump/, ingest/).
package filmoscope
