// Package services provides the pure domain services of the query pipeline:
// extracting order references from free text, detecting product categories,
// classifying message intent, and rendering status messages.
//
// All services in this package are stateless and side-effect free. Their
// matching behavior is driven by declared, ordered tables (pattern lists
// and keyword vocabularies) rather than control flow, so the tables can be
// enumerated in tests and extended without touching the matching logic.
package services
