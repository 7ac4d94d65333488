// Package checklist turns scraped trading-card checklist pages into typed
// card records. A checklist page lists a product's base set, inserts,
// parallels and autographs under free-text headings; the extraction engine
// recovers one structured record per card and refuses to answer when the
// result would not be trustworthy.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, http/); the
// extraction engine itself lives in extract/.
package checklist
