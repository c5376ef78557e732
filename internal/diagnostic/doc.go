// Package diagnostic provides structured warnings and errors for settings
// validation and run summaries.
//
// Key capabilities:
//   - Coded diagnostics ("loss_factor_out_of_range", "unknown_category", ...)
//   - Location by settings section and key
//   - Folding all errors into a single error value
package diagnostic
