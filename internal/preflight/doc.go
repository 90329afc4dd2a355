// Package preflight provides readiness checks for the programs and paths an
// ffext invocation depends on.
//
// The CLI "doctor" command runs RunAll and renders the results as a table.
// Checks never modify anything; a failed check is reported, not fixed.
package preflight
