// Package coinledger tracks the ownership status of a physical euro coin
// collection. The source of truth is a spreadsheet workbook; this package
// decodes it, reconciles each decode with the previous state to preserve
// provenance, persists snapshots, and reports completion over time.
package coinledger
