package arith

import (
	"fmt"
	"strings"
)

// Category partitions the fundamental arithmetic types. Ranks are only
// comparable between types of the same category.
type Category uint8

const (
	CategoryInvalid Category = iota
	CategoryInteger
	CategoryCharacter
	CategoryWideCharacter
	CategoryBoolean
	CategoryFloating
)

func (c Category) String() string {
	switch c {
	case CategoryInvalid:
		return "invalid"
	case CategoryInteger:
		return "integer"
	case CategoryCharacter:
		return "character"
	case CategoryWideCharacter:
		return "wide_character"
	case CategoryBoolean:
		return "boolean"
	case CategoryFloating:
		return "floating"
	default:
		return fmt.Sprintf("Category(%d)", c)
	}
}

// Categories lists every valid category in declaration order.
func Categories() []Category {
	return []Category{
		CategoryInteger,
		CategoryCharacter,
		CategoryWideCharacter,
		CategoryBoolean,
		CategoryFloating,
	}
}

// ParseCategory converts a category name back to its tag.
func ParseCategory(s string) (Category, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "wide_char" || name == "wide-character" {
		name = "wide_character"
	}
	for _, c := range Categories() {
		if c.String() == name {
			return c, nil
		}
	}
	return CategoryInvalid, fmt.Errorf("invalid category: %q (expected: integer|character|wide_character|boolean|floating)", s)
}
