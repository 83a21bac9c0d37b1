package entity

import (
	"fmt"

	"masthead/internal/utils/text"
)

// Length limits, counted in runes.
const (
	MinTitleLength        = 5
	MaxTitleLength        = 50
	MinMagazineNameLength = 2
	MaxMagazineNameLength = 16
)

// ValidateAuthorName checks that an author name is non-empty.
func ValidateAuthorName(name string) error {
	if name == "" {
		return rangeError("name", "must be a non-empty string")
	}
	return nil
}

// ValidateMagazineName checks that a magazine name is between 2 and 16 characters.
func ValidateMagazineName(name string) error {
	return validateLength("name", name, MinMagazineNameLength, MaxMagazineNameLength)
}

// ValidateCategory checks that a magazine category is non-empty.
func ValidateCategory(category string) error {
	if category == "" {
		return rangeError("category", "must be a non-empty string")
	}
	return nil
}

// ValidateTitle checks that an article title is between 5 and 50 characters.
func ValidateTitle(title string) error {
	return validateLength("title", title, MinTitleLength, MaxTitleLength)
}

func validateLength(field, value string, minLen, maxLen int) error {
	n := text.CountRunes(value)
	if n < minLen || n > maxLen {
		return rangeError(field, fmt.Sprintf("must be between %d and %d characters, got %d", minLen, maxLen, n))
	}
	return nil
}
