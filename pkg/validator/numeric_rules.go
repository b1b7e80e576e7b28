package validator

// Numeric is the set of integer and floating point types accepted by RangeOf.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// IntType fails with IntType unless value is a non-empty run of ASCII digits.
// Signs, decimal points and whitespace are rejected.
func (v *Validator) IntType(value, field string) bool {
	if !isDigits(value) {
		return v.fail(IntType, field)
	}
	return true
}

// Range fails with Range when value lies outside [min, max].
//
// Panics with *BoundsError when min > max.
func (v *Validator) Range(value int, field string, max, min int) bool {
	return RangeOf(v, value, field, max, min)
}

// RangeMax is Range with a minimum of zero.
func (v *Validator) RangeMax(value int, field string, max int) bool {
	return RangeOf(v, value, field, max, 0)
}

// RangeOf is the generic form of Validator.Range for any numeric type.
// Methods cannot take type parameters, hence the free function.
func RangeOf[T Numeric](v *Validator, value T, field string, max, min T) bool {
	if min > max {
		panic(&BoundsError{Check: "range", Field: field, Min: min, Max: max})
	}

	// Written as a negated conjunction so NaN fails.
	if !(value >= min && value <= max) {
		return v.fail(Range, field)
	}
	return true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
