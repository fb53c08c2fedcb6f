// Package prodex extracts structured product records from e-commerce
// product pages and renders collections of extracted records into a
// browsable HTML catalog. Extraction is heuristic: each field is resolved
// by a prioritized cascade of selector strategies with graceful
// degradation, so a record is always produced for any parseable page.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, http/).
package prodex
