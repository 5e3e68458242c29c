// Package urlinfo fetches a single web page and extracts its structured
// content: links, headings, paragraphs and list items. The result is
// returned to the caller as a Report and persisted as a plain-text file.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, http/).
package urlinfo
