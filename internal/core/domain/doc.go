// Package domain defines the core entities for launchkit.
//
// This package is the innermost layer of the hexagonal architecture.
// It holds the per-domain candidate records (Bookmark, Host, path
// helpers) and the scored-result types produced by one ranking pass.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
