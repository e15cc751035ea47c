// Package mongodb implements the store interfaces over MongoDB.
//
// Each store wraps a single collection of the configured database. Documents
// are decoded straight into the domain types via their bson tags. Driver
// errors are translated to the sentinel errors in internal/store so callers
// never depend on driver types.
package mongodb
