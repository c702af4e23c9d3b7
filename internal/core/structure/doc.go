// Package structure implements the heading-based document engine:
// outline extraction, schema compliance scoring and template derivation.
//
// Every function is a pure function of its string inputs. Nothing here
// performs I/O, holds state or returns an error, so callers may invoke
// it concurrently without coordination. Loading schema text is the
// caller's job; see services.SchemaService.
package structure
