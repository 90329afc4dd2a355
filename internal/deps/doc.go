// Package deps reports whether the external programs behind each backend
// can be found on PATH.
package deps
