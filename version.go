// Package subshell executes shell commands, optionally under a
// pseudo-terminal, capturing and echoing their output.
package subshell

// Version is the subshell release version.
const Version = "0.1.0"
