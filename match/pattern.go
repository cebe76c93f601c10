package match

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyPattern is returned for a pattern with no characters.
	ErrEmptyPattern = errors.New("match: empty pattern")

	// ErrCrossShape is returned for a cross pattern that does not have an
	// odd length of at least 3.
	ErrCrossShape = errors.New("match: cross pattern needs an odd length of at least 3")
)

// Pattern is a fixed sequence of characters to look for.
type Pattern []rune

// NewPattern returns the pattern for s.
func NewPattern(s string) (Pattern, error) {
	if s == "" {
		return nil, ErrEmptyPattern
	}
	return Pattern(s), nil
}

// NewCrossPattern returns the pattern for s after checking that it has a
// single center character.
func NewCrossPattern(s string) (Pattern, error) {
	p, err := NewPattern(s)
	if err != nil {
		return nil, err
	}
	if !p.IsCrossShaped() {
		return nil, fmt.Errorf("%w: %q has length %d", ErrCrossShape, s, len(p))
	}
	return p, nil
}

// Len returns the number of characters in p.
func (p Pattern) Len() int {
	return len(p)
}

// Reverse returns a new pattern with the characters of p in reverse order.
func (p Pattern) Reverse() Pattern {
	out := make(Pattern, len(p))
	for i, r := range p {
		out[len(p)-1-i] = r
	}
	return out
}

// IsPalindrome reports whether p reads the same in both directions.
func (p Pattern) IsPalindrome() bool {
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		if p[i] != p[j] {
			return false
		}
	}
	return true
}

// IsCrossShaped reports whether p can anchor a cross: odd length, at least 3.
func (p Pattern) IsCrossShaped() bool {
	return len(p) >= 3 && len(p)%2 == 1
}

// Center returns the middle character of an odd-length pattern.
func (p Pattern) Center() (rune, bool) {
	if len(p)%2 == 0 {
		return 0, false
	}
	return p[len(p)/2], true
}

// Arm returns the number of characters on each side of the center.
func (p Pattern) Arm() int {
	return len(p) / 2
}

// String returns the pattern as a string.
func (p Pattern) String() string {
	return string(p)
}
