// Package diagnostic provides structured, non-fatal findings produced while
// loading, validating and materializing scene documents.
//
// Key capabilities:
//   - Unresolved reference warnings with "did you mean" suggestions
//   - Unknown class and property reports
//   - Catalogue validation errors
package diagnostic
