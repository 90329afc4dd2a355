// Package options holds the user's intent for a single ffext invocation.
//
// Options is built once from command-line flags, calibrated once so the
// backend matches the selected action, and then read by the translator and
// the engine. The Action sum type is consumed through Match so that adding a
// new action variant breaks every consumer at compile time until it handles
// the variant.
package options
