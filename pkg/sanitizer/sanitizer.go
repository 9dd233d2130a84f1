// Package sanitizer holds input normalisation transforms that compose into
// pipelines with Apply and Compose.
package sanitizer

import "strings"

// Apply runs value through transforms in order.
func Apply[T any](value T, transforms ...func(T) T) T {
	for _, transform := range transforms {
		value = transform(value)
	}
	return value
}

// Compose returns a reusable pipeline of transforms.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}

// Trim removes leading and trailing spaces and ASCII control characters
// (U+0000 through U+0020). Other Unicode whitespace such as U+00A0 is kept.
func Trim(s string) string {
	return strings.TrimFunc(s, isSpaceOrControl)
}

func isSpaceOrControl(r rune) bool {
	return r <= ' '
}
