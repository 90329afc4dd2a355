// Package engine turns calibrated options into a Plan and either reports it
// (dry run) or executes it as a single backend subprocess.
//
// The Executor starts the backend without a shell, pipes its stderr, and
// relays the diagnostic stream to the caller one line at a time until the
// stream closes. The backend's exit status is captured in the Result but is
// not treated as an error; callers decide whether it should gate success via
// Outcome.Err. Tests substitute the Runner to observe that dry runs never
// execute anything.
package engine
