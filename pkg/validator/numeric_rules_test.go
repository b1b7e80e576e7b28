package validator_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formguard/pkg/validator"
)

func TestIntType(t *testing.T) {
	t.Run("digit strings", func(t *testing.T) {
		for _, value := range []string{"0", "100", "007", "12345678901234567890"} {
			v := validator.New()
			assert.True(t, v.IntType(value, "n"), "value %q should pass", value)
		}
	})

	t.Run("non digit strings", func(t *testing.T) {
		for _, value := range []string{"", "test", "-1", "+1", "1.5", " 1", "1 ", "1e3", "１２３"} {
			v := validator.New()
			assert.False(t, v.IntType(value, "n"), "value %q should fail", value)
			assert.Equal(t, []string{"n"}, v.Errors().Get(validator.IntType))
		}
	})
}

func TestRange(t *testing.T) {
	t.Run("upper bound inclusive", func(t *testing.T) {
		v := validator.New()
		assert.True(t, v.Range(100, "x", 100, 50))
		assert.True(t, v.Range(50, "x", 100, 50))
		assert.True(t, v.Valid())
	})

	t.Run("below minimum", func(t *testing.T) {
		v := validator.New()
		assert.False(t, v.Range(49, "x", 100, 50))
		assert.False(t, v.Range(10, "nameMin", 100, 50))
		assert.Equal(t, []string{"x", "nameMin"}, v.Errors().Get(validator.Range))
	})

	t.Run("default minimum is zero", func(t *testing.T) {
		v := validator.New()
		assert.True(t, v.RangeMax(0, "nameRange", 100))
		assert.False(t, v.RangeMax(-1, "nameRange", 100))
		assert.False(t, v.RangeMax(100, "nameMax", 50))
		assert.Equal(t, 2, v.Errors().Count(validator.Range))
	})

	t.Run("inverted bounds panic", func(t *testing.T) {
		v := validator.New()
		assert.PanicsWithError(t, `validator: range check on "x": minimum 100 is greater than maximum 50`, func() {
			v.Range(75, "x", 50, 100)
		})
		assert.True(t, v.Valid())
	})
}

func TestRangeOf(t *testing.T) {
	t.Run("floats", func(t *testing.T) {
		v := validator.New()
		assert.True(t, validator.RangeOf(v, 0.5, "ratio", 1.0, 0.0))
		assert.False(t, validator.RangeOf(v, 1.01, "ratio", 1.0, 0.0))
		assert.False(t, validator.RangeOf(v, math.NaN(), "ratio", 1.0, 0.0))
		assert.Equal(t, []string{"ratio", "ratio"}, v.Errors().Get(validator.Range))
	})

	t.Run("unsigned", func(t *testing.T) {
		v := validator.New()
		assert.True(t, validator.RangeOf[uint8](v, 255, "b", 255, 0))
	})

	t.Run("inverted bounds panic", func(t *testing.T) {
		v := validator.New()
		assert.Panics(t, func() {
			validator.RangeOf(v, 1.0, "x", 0.5, 0.6)
		})
	})
}
