// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The document engine itself lives in internal/core/structure; services
// load schema text, call the engine and persist generated files.
package services
