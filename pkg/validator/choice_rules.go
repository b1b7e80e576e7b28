package validator

import "slices"

// InArray fails with InArray unless value equals one of options. Use it to
// confirm a submitted radio, checkbox or select value was actually offered.
func (v *Validator) InArray(value, field string, options []string) bool {
	return InArrayOf(v, value, field, options)
}

// InArrayOf is the generic form of Validator.InArray.
func InArrayOf[T comparable](v *Validator, value T, field string, options []T) bool {
	if !slices.Contains(options, value) {
		return v.fail(InArray, field)
	}
	return true
}
