// Package logic holds boolean helpers shared by the arithmetic packages.
package logic

// Xor returns true if exactly one of a or b is true.
func Xor(a, b bool) bool {
	return a != b
}
