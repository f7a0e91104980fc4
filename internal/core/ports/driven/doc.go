// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services and the CLI depend on these interfaces, and the adapters
// under internal/adapters/driven implement them.
//
// # Required Interfaces
//
//   - BookmarkSource: supplies browser bookmark candidates
//   - HostSource: supplies SSH host candidates
//   - PathHistory: supplies directory candidates and the recency hint
//
// # Optional Interfaces
//
// These degrade gracefully when absent:
//
//   - Transliterator: phonetic augmentation for non-Latin bookmark names.
//     The Noop implementation (or a nil port) disables augmentation without
//     error.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
