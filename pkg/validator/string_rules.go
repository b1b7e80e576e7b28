package validator

import "strings"

// Required fails with Require when value is empty after trimming whitespace.
func (v *Validator) Required(value, field string) bool {
	if strings.TrimSpace(value) == "" {
		return v.fail(Require, field)
	}
	return true
}

// Length fails with Length when value has fewer than min or more than max
// characters. Characters are counted in the Validator's charset, so a
// multi-byte character counts once.
//
// Panics with *BoundsError when min > max.
func (v *Validator) Length(value, field string, max, min int) bool {
	if min > max {
		panic(&BoundsError{Check: "length", Field: field, Min: min, Max: max})
	}

	n := v.charset.Len(value)
	if n < min || n > max {
		return v.fail(Length, field)
	}
	return true
}

// MaxLength is Length with a minimum of zero.
func (v *Validator) MaxLength(value, field string, max int) bool {
	return v.Length(value, field, max, 0)
}
