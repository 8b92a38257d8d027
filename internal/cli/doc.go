// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes. It
// translates CLI flags and an optional config file into the application's
// internal configuration.
//
// Flags win over the config file, which wins over the built-in defaults. A
// flag only overrides the file when it is given explicitly.
package cli
