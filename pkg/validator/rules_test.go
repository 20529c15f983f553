package validator_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/reqvalidator/pkg/validator"
)

func TestParametrizedPredicates(t *testing.T) {
	t.Run("length", func(t *testing.T) {
		assert.True(t, validator.MinLen(3)("abc"))
		assert.True(t, validator.MinLen(3)("héé"))
		assert.False(t, validator.MinLen(3)("ab"))
		assert.False(t, validator.MinLen(0)(12))
		assert.True(t, validator.MaxLen(2)("ab"))
		assert.False(t, validator.MaxLen(2)("abc"))
	})

	t.Run("numbers", func(t *testing.T) {
		assert.True(t, validator.MinNum(18)("18"))
		assert.True(t, validator.MinNum(18)(21))
		assert.False(t, validator.MinNum(18)("17.9"))
		assert.False(t, validator.MinNum(18)("old"))
		assert.True(t, validator.MaxNum(10)(9.5))
		assert.False(t, validator.MaxNum(10)("11"))
	})

	t.Run("not blank and matches", func(t *testing.T) {
		assert.True(t, validator.NotBlank()("x"))
		assert.False(t, validator.NotBlank()("  "))
		assert.False(t, validator.NotBlank()(nil))

		slug := validator.Matches(regexp.MustCompile(`^[a-z0-9-]+$`))
		assert.True(t, slug("my-post"))
		assert.False(t, slug("My Post"))
	})
}

func TestParsePredicate(t *testing.T) {
	cases := []struct {
		expr  string
		value any
		want  bool
	}{
		{"email", "test@example.com", true},
		{"IPV4Strict", "300.1.1.1", false},
		{"not_blank", " ", false},
		{"min_len:2", "ab", true},
		{"max_len: 2", "abc", false},
		{"min:0.5", "0.4", false},
		{"max:100", 100, true},
		{"matches:^a+b$", "aaab", true},
		{"matches:^[0-9]{3}:[0-9]{2}$", "123:45", true},
	}
	for _, tc := range cases {
		t.Run(tc.expr, func(t *testing.T) {
			p, err := validator.ParsePredicate(tc.expr)
			require.NoError(t, err)
			assert.Equal(t, tc.want, p(tc.value))
		})
	}

	t.Run("errors", func(t *testing.T) {
		_, err := validator.ParsePredicate("zipcode")
		assert.ErrorIs(t, err, validator.ErrUnknownPredicate)

		_, err = validator.ParsePredicate("between:1")
		assert.ErrorIs(t, err, validator.ErrUnknownPredicate)

		_, err = validator.ParsePredicate("min_len:-1")
		assert.ErrorIs(t, err, validator.ErrInvalidSpec)

		_, err = validator.ParsePredicate("max:ten")
		assert.ErrorIs(t, err, validator.ErrInvalidSpec)

		_, err = validator.ParsePredicate("matches:[")
		assert.ErrorIs(t, err, validator.ErrInvalidSpec)
	})
}
