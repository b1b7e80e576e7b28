package validator

import (
	"encoding/json"
	"strings"
)

// Errors collects the names of fields that failed, grouped by category.
// Every category is always present; a category without failures is an empty
// list. Within a category names keep the order the checks ran in and may
// repeat.
type Errors struct {
	lists [categoryCount][]string
}

func (e *Errors) add(c Category, field string) {
	e.lists[c] = append(e.lists[c], field)
}

// Get returns the field names recorded under c, or nil if there are none.
// The returned slice is a copy.
func (e Errors) Get(c Category) []string {
	if !c.valid() || len(e.lists[c]) == 0 {
		return nil
	}
	out := make([]string, len(e.lists[c]))
	copy(out, e.lists[c])
	return out
}

// Has reports whether at least one failure was recorded under c.
func (e Errors) Has(c Category) bool {
	return c.valid() && len(e.lists[c]) > 0
}

// Count returns the number of entries recorded under c.
func (e Errors) Count(c Category) int {
	if !c.valid() {
		return 0
	}
	return len(e.lists[c])
}

// Len returns the total number of entries across all categories.
func (e Errors) Len() int {
	n := 0
	for _, list := range e.lists {
		n += len(list)
	}
	return n
}

// IsEmpty reports whether no check has recorded a field.
func (e Errors) IsEmpty() bool {
	return e.Len() == 0
}

// Categories returns the categories that have at least one entry, in
// declaration order.
func (e Errors) Categories() []Category {
	var out []Category
	for c, list := range e.lists {
		if len(list) > 0 {
			out = append(out, Category(c))
		}
	}
	return out
}

// Fields returns every distinct field name that failed any check, in order of
// first appearance (category order, then insertion order).
func (e Errors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, list := range e.lists {
		for _, field := range list {
			if !seen[field] {
				fields = append(fields, field)
				seen[field] = true
			}
		}
	}
	return fields
}

// Map returns the collection keyed by category tag. Only categories with
// entries are included, so an empty collection yields an empty map.
func (e Errors) Map() map[string][]string {
	out := make(map[string][]string)
	for c, list := range e.lists {
		if len(list) == 0 {
			continue
		}
		fields := make([]string, len(list))
		copy(fields, list)
		out[categoryTags[c]] = fields
	}
	return out
}

func (e Errors) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.Map())
}

func (e Errors) Error() string {
	if e.IsEmpty() {
		return "validation failed"
	}

	var parts []string
	for c, list := range e.lists {
		if len(list) > 0 {
			parts = append(parts, categoryTags[c]+": "+strings.Join(list, ", "))
		}
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is lets errors.Is(err, ErrValidationFailed) match an Errors value.
func (e Errors) Is(target error) bool {
	return target == ErrValidationFailed
}

func (e Errors) clone() Errors {
	var out Errors
	for c, list := range e.lists {
		if len(list) > 0 {
			out.lists[c] = append([]string(nil), list...)
		}
	}
	return out
}
