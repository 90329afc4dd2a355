// Package main hosts the ffext CLI entrypoint and command graph.
//
// The Cobra-based command tree turns flags and one optional subcommand
// (scene-detect or split-by-time) into an options.Options value, hands it to
// the engine, and relays the backend's diagnostic stream to stdout. Helper
// commands cover configuration scaffolding, ffprobe inspection, and
// dependency checks.
//
// Keep this package lean: argument grammar lives in internal/translate and
// process handling in internal/engine.
package main
