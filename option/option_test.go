package option_test

import (
	"testing"

	"github.com/Jordan466/OptionRecords/option"
	"github.com/stretchr/testify/assert"
)

func TestSomeAndNone(t *testing.T) {
	s := option.Some(42)
	assert.True(t, s.IsSome())
	assert.False(t, s.IsNone())
	assert.True(t, option.IsSome(s))
	assert.False(t, option.IsNone(s))

	n := option.None[int]()
	assert.True(t, n.IsNone())
	assert.False(t, n.IsSome())
	assert.True(t, option.IsNone(n))
	assert.False(t, option.IsSome(n))
}

func TestZeroValueIsNone(t *testing.T) {
	var o option.Option[string]
	assert.True(t, o.IsNone())
	assert.Equal(t, option.None[string](), o)
}

func TestSomeOfZeroValueIsNotNone(t *testing.T) {
	assert.True(t, option.Some(0).IsSome())
	assert.NotEqual(t, option.None[int](), option.Some(0))
}

func TestEquality(t *testing.T) {
	tests := []struct {
		name string
		a, b option.Option[int]
		want bool
	}{
		{"none equals none", option.None[int](), option.None[int](), true},
		{"none differs from some", option.None[int](), option.Some(42), false},
		{"some differs from none", option.Some(42), option.None[int](), false},
		{"same values", option.Some(42), option.Some(42), true},
		{"different values", option.Some(42), option.Some(99), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a == tt.b)
			assert.Equal(t, tt.want, option.Equal(tt.a, tt.b))
			assert.Equal(t, tt.want, option.EqualFunc(tt.a, tt.b, func(x, y int) bool { return x == y }))
		})
	}
}

func TestEqualFuncNonComparable(t *testing.T) {
	eq := func(a, b []int) bool { return assert.ObjectsAreEqual(a, b) }

	assert.True(t, option.EqualFunc(option.Some([]int{1, 2}), option.Some([]int{1, 2}), eq))
	assert.False(t, option.EqualFunc(option.Some([]int{1, 2}), option.Some([]int{2, 1}), eq))
	assert.False(t, option.EqualFunc(option.Some([]int{}), option.None[[]int](), eq))
	assert.True(t, option.EqualFunc(option.None[[]int](), option.None[[]int](), eq))
}

func TestNoneUsableAsMapKey(t *testing.T) {
	seen := map[option.Option[string]]int{}
	seen[option.None[string]()]++
	seen[option.None[string]()]++
	seen[option.Some("a")]++

	assert.Equal(t, 2, seen[option.None[string]()])
	assert.Equal(t, 1, seen[option.Some("a")])
}

func TestUnwrap(t *testing.T) {
	v, ok := option.Some("hello").Unwrap()
	assert.True(t, ok)
	assert.Equal(t, "hello", v)

	v, ok = option.None[string]().Unwrap()
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestMatch(t *testing.T) {
	describe := func(o option.Option[int]) string {
		return option.Match(o,
			func(v int) string { return "got " + option.Some(v).String() },
			func() string { return "nothing" },
		)
	}

	assert.Equal(t, "got Some(7)", describe(option.Some(7)))
	assert.Equal(t, "nothing", describe(option.None[int]()))
}

func TestString(t *testing.T) {
	assert.Equal(t, "Some(42)", option.Some(42).String())
	assert.Equal(t, "Some(abc)", option.Some("abc").String())
	assert.Equal(t, "None", option.None[float64]().String())
}
