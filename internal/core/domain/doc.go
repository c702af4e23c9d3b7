// Package domain defines the core business entities for docschema.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - SchemaKind: The closed set of documentation kinds a schema describes
//   - Heading, StructureSummary: The heading outline of a Markdown document
//   - ValidationResult: The compliance verdict of a document against a schema
//   - LicenseRequest, GitignoreRequest: Inputs for boilerplate generation
//   - ProjectAnalysis: The documentation inventory of a project directory
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
