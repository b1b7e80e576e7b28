package validator_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formguard/pkg/validator"
)

func TestRequired(t *testing.T) {
	t.Run("valid values", func(t *testing.T) {
		for _, value := range []string{"Test", " x ", "0", "テスト"} {
			v := validator.New()
			assert.True(t, v.Required(value, "name"), "value %q should pass", value)
			assert.True(t, v.Valid())
		}
	})

	t.Run("empty or whitespace values", func(t *testing.T) {
		for _, value := range []string{"", " ", "\t\n", "   \r\n"} {
			v := validator.New()
			assert.False(t, v.Required(value, "name"), "value %q should fail", value)
			assert.Equal(t, []string{"name"}, v.Errors().Get(validator.Require))
		}
	})

	t.Run("order preserved across fields", func(t *testing.T) {
		v := validator.New()
		v.Required("", "a")
		v.Required("", "b")
		assert.Equal(t, []string{"a", "b"}, v.Errors().Get(validator.Require))
	})
}

func TestLength(t *testing.T) {
	t.Run("within bounds", func(t *testing.T) {
		v := validator.New()
		assert.True(t, v.Length("範囲テスト", "nameLen", 10, 5))
		assert.True(t, v.Valid())
	})

	t.Run("too short", func(t *testing.T) {
		v := validator.New()
		assert.False(t, v.Length("最小値テスト", "nameMin", 10, 7))
		assert.Equal(t, []string{"nameMin"}, v.Errors().Get(validator.Length))
	})

	t.Run("too long", func(t *testing.T) {
		v := validator.New()
		assert.True(t, v.MaxLength("最大値テスト", "nameMax", 7))
		assert.False(t, v.MaxLength("最大値テスト", "nameMax", 5))
		assert.Equal(t, []string{"nameMax"}, v.Errors().Get(validator.Length))
	})

	t.Run("counts characters not bytes", func(t *testing.T) {
		v := validator.New()
		value := "あいうえお"
		require.Equal(t, 15, len(value))
		assert.True(t, v.MaxLength(value, "kana", 5))
		assert.False(t, v.MaxLength(value+"か", "kana", 5))
	})

	t.Run("bounds are inclusive", func(t *testing.T) {
		v := validator.New()
		assert.True(t, v.Length("abc", "f", 3, 3))
		assert.True(t, v.Length("", "f", 0, 0))
		assert.True(t, v.Valid())
	})

	t.Run("inverted bounds panic", func(t *testing.T) {
		v := validator.New()
		defer func() {
			rec := recover()
			require.NotNil(t, rec)
			err, ok := rec.(error)
			require.True(t, ok)
			assert.True(t, errors.Is(err, validator.ErrInvertedBounds))

			var bErr *validator.BoundsError
			require.True(t, errors.As(err, &bErr))
			assert.Equal(t, "length", bErr.Check)
			assert.Equal(t, "f", bErr.Field)
			assert.Contains(t, err.Error(), "minimum 5 is greater than maximum 3")

			assert.True(t, v.Valid(), "no entry is recorded for a caller bug")
		}()
		v.Length("abcd", "f", 3, 5)
	})

	t.Run("long input", func(t *testing.T) {
		v := validator.New()
		assert.False(t, v.MaxLength(strings.Repeat("字", 256), "body", 255))
	})
}
