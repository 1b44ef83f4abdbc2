// Package pointers has small helpers for optional values.
package pointers

// Ptr returns a pointer to v. Useful for filling optional struct fields inline.
func Ptr[T any](v T) *T {
	return &v
}
