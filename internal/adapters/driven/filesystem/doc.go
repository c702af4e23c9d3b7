// Package filesystem implements the driven storage ports on the local disk.
//
// Schemas live in a single directory as schema.<kind>.md files. Local
// templates live beneath the templates directory:
//
//	<templates>/licenses/<name>.txt
//	<templates>/gitignore/<name>.gitignore
//
// Every text file is decoded before use: a UTF-8 byte-order mark is
// stripped and UTF-16 files carrying a BOM are converted to UTF-8.
package filesystem
