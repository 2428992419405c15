package valueobjects

import (
	"errors"
	"regexp"
	"strings"
)

// conceptIDPattern matches normalized ids: lowercase alphanumeric tokens
// joined by single hyphens, e.g. "quadratic-equations".
var conceptIDPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// ConceptID is a value object representing a unique concept identifier
// Value objects are immutable and have no identity beyond their value
type ConceptID struct {
	value string
}

// NewConceptID creates a ConceptID from an already-normalized token
func NewConceptID(id string) (ConceptID, error) {
	if id == "" {
		return ConceptID{}, errors.New("concept ID cannot be empty")
	}
	if !conceptIDPattern.MatchString(id) {
		return ConceptID{}, errors.New("concept ID must be a lowercase hyphenated token")
	}
	return ConceptID{value: id}, nil
}

// NormalizeConceptID lowercases free text and collapses separators into
// hyphens, producing the canonical token form ("Linear Equations" ->
// "linear-equations"). The result is not guaranteed to be valid; callers
// that need certainty should pass it through NewConceptID.
func NormalizeConceptID(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return '-'
		}
	}, s)
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	return strings.Trim(s, "-")
}

// IsValidConceptID reports whether a raw string already has the canonical form
func IsValidConceptID(s string) bool {
	return conceptIDPattern.MatchString(s)
}

// String returns the string representation of the ConceptID
func (id ConceptID) String() string {
	return id.value
}

// Equals checks if two ConceptIDs are equal
func (id ConceptID) Equals(other ConceptID) bool {
	return id.value == other.value
}

// IsZero checks if the ConceptID is the zero value
func (id ConceptID) IsZero() bool {
	return id.value == ""
}

// MarshalJSON implements json.Marshaler
func (id ConceptID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + id.value + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (id *ConceptID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return errors.New("ConceptID must be a string")
	}
	id.value = string(data[1 : len(data)-1])
	return nil
}
