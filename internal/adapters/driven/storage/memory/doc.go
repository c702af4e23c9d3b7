// Package memory provides in-memory implementations of the driven ports.
// They back tests and the CLI's --offline mode and hold nothing on disk.
package memory
