// Package internalcheck provides internal validation and testing utilities.
//
// This package contains static-analysis tests that enforce the policies
// the resonix-go wrapper is built around, such as panic containment at
// every engine entry point. It is not intended for external use and the
// API may change without notice.
//
// # Internal Use Only
//
// This package is part of the internal implementation and should not be
// imported by applications using the resonix library. Use the public API
// provided by pkg/resonix and its subpackages instead.
package internalcheck
