// Package workspace manages staging directories for import operations.
//
// Zip archives and cloned repositories are extracted into a timestamped
// staging directory (e.g., webineer-20260829-101500) that is removed once
// the import finishes, so failed imports never leave extracted content
// behind.
package workspace
