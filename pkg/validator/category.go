package validator

import "fmt"

// Category identifies which rule produced a failure.
type Category uint8

const (
	Encoding Category = iota
	Null
	Require
	Length
	IntType
	Range
	Date
	Regex
	Mail
	InArray

	categoryCount
)

var categoryTags = [categoryCount]string{
	Encoding: "encoding",
	Null:     "null",
	Require:  "require",
	Length:   "length",
	IntType:  "intType",
	Range:    "range",
	Date:     "date",
	Regex:    "regex",
	Mail:     "mail",
	InArray:  "inArray",
}

// String returns the category tag, e.g. "require" or "inArray".
func (c Category) String() string {
	if !c.valid() {
		return fmt.Sprintf("Category(%d)", uint8(c))
	}
	return categoryTags[c]
}

// MarshalText encodes the category as its tag so it can key JSON objects.
func (c Category) MarshalText() ([]byte, error) {
	if !c.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCategory, uint8(c))
	}
	return []byte(categoryTags[c]), nil
}

// UnmarshalText decodes a category tag.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c Category) valid() bool {
	return c < categoryCount
}

// Categories returns every category in declaration order.
func Categories() []Category {
	all := make([]Category, 0, categoryCount)
	for c := Category(0); c < categoryCount; c++ {
		all = append(all, c)
	}
	return all
}

// ParseCategory maps a tag back to its Category.
func ParseCategory(tag string) (Category, error) {
	for c, t := range categoryTags {
		if t == tag {
			return Category(c), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, tag)
}
