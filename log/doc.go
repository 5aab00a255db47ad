// Package log builds [log/slog] handlers for jlv's own diagnostics.
//
// The formatted records jlv produces go to stdout; everything the tool says
// about itself (config files it found, the expanded template) goes to
// stderr through a handler built here; startup failures are printed to
// stderr directly by the command. The default level is error so that jlv
// stays quiet in the middle of a pipeline.
package log
