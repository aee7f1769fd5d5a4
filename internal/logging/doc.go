// Package logging constructs the application slog.Logger.
//
// Two output formats exist: a human-oriented console handler used when an
// operator drives an import from a terminal, and a JSON handler for log
// files and machine consumption. Both honor the same level knob from
// configuration.
package logging
