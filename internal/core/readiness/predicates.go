// Package readiness classifies a campaign draft into per-section completion
// state, aggregates it into an overall readiness signal and decides whether the
// campaign may be published for approval.
//
// Everything in this package is a pure function of its input except the
// payment-method lookup performed by Gate.Check.
package readiness

import (
	"math"
	"strings"
	"unicode/utf8"

	"campaign-desk/internal/core/domain"
)

// HasText reports whether s holds at least one non-whitespace character.
func HasText(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}

// HasTextMin reports whether the trimmed s is at least n characters long.
func HasTextMin(s *string, n int) bool {
	if !HasText(s) {
		return false
	}
	return utf8.RuneCountInString(strings.TrimSpace(*s)) >= n
}

// HasItems reports whether items contains at least one non-blank entry.
func HasItems[T ~string](items []T) bool {
	for _, v := range items {
		if strings.TrimSpace(string(v)) != "" {
			return true
		}
	}
	return false
}

// OneOf reports whether v is set to one of the allowed values.
func OneOf[T ~string](v T, allowed []T) bool {
	return domain.Known(v, allowed)
}

// Positive reports whether f is set to a finite number greater than zero.
func Positive(f *float64) bool {
	if f == nil || math.IsNaN(*f) || math.IsInf(*f, 0) {
		return false
	}
	return *f > 0
}

// PositiveInt reports whether n is set and greater than zero.
func PositiveInt(n *int) bool {
	return n != nil && *n > 0
}

// AnyPositive is the disjunctive group predicate: at least one of ns must be a
// positive integer.
func AnyPositive(ns ...*int) bool {
	for _, n := range ns {
		if PositiveInt(n) {
			return true
		}
	}
	return false
}

// HasDate reports whether d is set to a non-zero date.
func HasDate(d *domain.Date) bool {
	return d != nil && !d.IsZero()
}

// IsTrue reports whether b is set and strictly true.
func IsTrue(b *bool) bool {
	return b != nil && *b
}

// HasAgeMin reports whether the range exists and its lower bound is set.
func HasAgeMin(r *domain.AgeRange) bool {
	return r != nil && PositiveInt(r.Min)
}

// HasAgeMax reports whether the range exists and its upper bound is set.
func HasAgeMax(r *domain.AgeRange) bool {
	return r != nil && PositiveInt(r.Max)
}

// HasAgeRange reports whether both bounds of r are set. The ordering of the
// bounds is reported as a warning, not checked here.
func HasAgeRange(r *domain.AgeRange) bool {
	return HasAgeMin(r) && HasAgeMax(r)
}

// BothTrue is the boolean-pair predicate used for legal confirmations.
func BothTrue(a, b *bool) bool {
	return IsTrue(a) && IsTrue(b)
}
