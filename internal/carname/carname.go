// Package carname validates and splits the raw car name input.
package carname

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

const (
	// MaxLen is the longest accepted name, in characters.
	MaxLen = 5
	// Delimiter separates names on the input line.
	Delimiter = ","
)

var ErrInvalidName = errors.New("invalid car name")

// ValidationError describes one rejected name.
type ValidationError struct {
	Name   string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("car name %q: %s", e.Name, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidName }

// Len counts characters of the NFC form, so decomposed Hangul counts the
// same as its composed syllables.
func Len(name string) int {
	return utf8.RuneCountInString(norm.NFC.String(name))
}

// Validate accepts names of 1..MaxLen characters.
func Validate(name string) error {
	n := Len(name)
	switch {
	case n == 0:
		return &ValidationError{Name: name, Reason: "must not be empty"}
	case n > MaxLen:
		return &ValidationError{Name: name, Reason: fmt.Sprintf("must be at most %d characters, got %d", MaxLen, n)}
	}
	return nil
}

// SplitByComma splits on Delimiter without trimming.
func SplitByComma(s string) []string {
	return strings.Split(s, Delimiter)
}
