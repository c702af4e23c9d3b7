// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - SchemaStore: Schema text keyed by schema kind
//   - TemplateStore: License and gitignore templates shipped on disk
//   - DocumentStore: Reads documents to validate, writes generated files
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - RemoteTemplateSource: GitHub template fetching. Without it, only local templates are served.
//   - TemplateCache: Remote template caching. Without it, every request goes to GitHub.
//   - ProjectScanner: Project documentation discovery. Without it, analysis is unavailable.
//   - FileWatcher: Change notifications. Without it, watch mode is unavailable.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
