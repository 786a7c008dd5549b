// Package utils holds small generic helpers shared across packages.
package utils

// Ptr returns a pointer to v. Used to build optional update payloads
// where nil means "field not present".
func Ptr[T any](v T) *T {
	return &v
}
