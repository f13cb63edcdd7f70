package validate

import (
	"math"
	"strings"
	"unicode/utf8"
)

const MinNameLength = 3

// Name trims s and reports whether the result has at least MinNameLength characters.
func Name(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	return trimmed, utf8.RuneCountInString(trimmed) >= MinNameLength
}

// NonEmpty trims s and reports whether anything is left.
func NonEmpty(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	return trimmed, trimmed != ""
}

func ID(id int) bool {
	return id > 0
}

func Number(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Percentage reports whether f is a number within 0..100.
func Percentage(f float64) bool {
	return Number(f) && f >= 0 && f <= 100
}
