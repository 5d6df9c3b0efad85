// Package delta implements the Quill Delta model for rich-text documents
// and edits: an algebra of insert/retain/delete operations, composition and
// operational transformation of concurrent edits, application of an edit to
// a document, line splitting, and diffing of two documents.
//
// The core is pure and synchronous. Every exported function is a value
// transformation: Delta values are immutable once built, and the package
// keeps no process-wide state of its own beyond the grapheme-counting
// strategy toggled by SetUnicodeMode.
package delta
