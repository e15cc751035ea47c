// Package mocks provides centralized mock implementations for testing.
//
// This package contains mock implementations of the store, auth, and gateway
// interfaces used throughout the application, facilitating consistent and DRY
// testing across the codebase. Instead of defining inline mocks in individual
// test files, these standardized mock implementations can be reused.
//
// Every mock pairs function fields (for per-test overrides) with an in-memory
// default implementation, and counts calls so tests can assert that a gated
// request never reached the store.
package mocks
