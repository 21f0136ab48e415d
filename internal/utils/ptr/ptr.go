// Package ptr provides small helpers for constructing pointers to literals.
package ptr

// To creates a pointer to the given value.
// This is a generic utility function that works with any type.
func To[T any](v T) *T {
	return &v
}

// String creates a pointer to the given string value.
func String(s string) *string {
	return &s
}

// Int creates a pointer to the given int value.
func Int(i int) *int {
	return &i
}
