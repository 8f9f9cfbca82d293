// Package kernel holds the primitives shared by every aggregate of the
// procurement domain: identifiers and the string helpers used to validate
// free text coming from clients.
//
// Values in this package are immutable and safe to share between goroutines.
package kernel
