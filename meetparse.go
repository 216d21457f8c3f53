// Package meetparse extracts meeting metadata from loosely-structured wiki
// pages. Pages are written by many different people and the only reliable
// structure is a sequence of header-delimited chapters, so extraction is a
// set of heuristics that degrade gracefully when signals are missing.
//
// This package contains domain types, interfaces and the text-level
// heuristics following Ben Johnson's Standard Package Layout.
// Implementations live in subdirectories named after their primary
// dependency (e.g., goquery/, sqlite/, dateparser/).
package meetparse
