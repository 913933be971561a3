package option_test

import (
	"database/sql"
	"slices"
	"testing"

	"github.com/Jordan466/OptionRecords/option"
	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T {
	return &v
}

func TestOfNullable(t *testing.T) {
	assert.Equal(t, option.Some(42), option.OfNullable(ptr(42)))
	assert.Equal(t, option.None[int](), option.OfNullable[int](nil))
}

func TestOfNullableCopiesValue(t *testing.T) {
	v := 1
	o := option.OfNullable(&v)
	v = 2
	assert.Equal(t, option.Some(1), o)
}

func TestToNullable(t *testing.T) {
	assert.Nil(t, option.ToNullable(option.None[int]()))

	p := option.ToNullable(option.Some(42))
	if assert.NotNil(t, p) {
		assert.Equal(t, 42, *p)
	}
}

func TestNullableRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		input *float64
	}{
		{"absent", nil},
		{"zero", ptr(0.0)},
		{"value", ptr(3.5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.input, option.ToNullable(option.OfNullable(tt.input)))
		})
	}
}

type node struct {
	name string
}

func TestOfObj(t *testing.T) {
	n := &node{name: "a"}
	var nilNode *node
	var nilMap map[string]int
	var nilSlice []int
	var nilFunc func()
	var nilErr error

	assert.Equal(t, option.Some(n), option.OfObj(n))
	assert.True(t, option.OfObj(nilNode).IsNone())
	assert.True(t, option.OfObj(nilMap).IsNone())
	assert.True(t, option.OfObj(nilSlice).IsNone())
	assert.True(t, option.OfObj(nilFunc).IsNone())
	assert.True(t, option.OfObj(nilErr).IsNone())

	assert.True(t, option.OfObj(map[string]int{}).IsSome())
	assert.True(t, option.OfObj([]int{}).IsSome())
	assert.True(t, option.OfObj(0).IsSome(), "values that cannot be nil are always present")
}

func TestOfObjTypedNilInsideInterface(t *testing.T) {
	var nilNode *node
	var v any = nilNode
	assert.True(t, option.OfObj(v).IsNone())

	back := option.ToObj(option.OfObj(v))
	assert.NotEqual(t, v, back, "the typed nil is not preserved")
	assert.True(t, back == nil)
}

func TestObjRoundTrip(t *testing.T) {
	n := &node{name: "a"}
	var nilNode *node

	assert.Same(t, n, option.ToObj(option.OfObj(n)))
	assert.Nil(t, option.ToObj(option.OfObj(nilNode)))
	assert.Nil(t, option.ToObj(option.None[*node]()))
}

func TestSQLConversions(t *testing.T) {
	assert.Equal(t, option.Some("x"), option.FromSQL(sql.Null[string]{V: "x", Valid: true}))
	assert.Equal(t, option.None[string](), option.FromSQL(sql.Null[string]{}))

	assert.Equal(t, sql.Null[int64]{V: 7, Valid: true}, option.ToSQL(option.Some[int64](7)))
	assert.Equal(t, sql.Null[int64]{}, option.ToSQL(option.None[int64]()))

	n := sql.Null[int64]{V: 7, Valid: true}
	assert.Equal(t, n, option.ToSQL(option.FromSQL(n)))
}

func TestFromOK(t *testing.T) {
	m := map[string]int{"a": 1}

	v, ok := m["a"]
	assert.Equal(t, option.Some(1), option.FromOK(v, ok))

	v, ok = m["b"]
	assert.Equal(t, option.None[int](), option.FromOK(v, ok))

	var x any = "text"
	s, ok := x.(string)
	assert.Equal(t, option.Some("text"), option.FromOK(s, ok))
}

func TestToSlice(t *testing.T) {
	none := option.ToSlice(option.None[int]())
	assert.NotNil(t, none)
	assert.Len(t, none, 0)

	assert.Equal(t, []int{42}, option.ToSlice(option.Some(42)))
	assert.Equal(t, []string{"a"}, option.Some("a").ToSlice())
}

func TestToSeq(t *testing.T) {
	assert.Empty(t, slices.Collect(option.ToSeq(option.None[int]())))
	assert.Equal(t, []int{42}, slices.Collect(option.ToSeq(option.Some(42))))

	count := 0
	for v := range option.Some("x").ToSeq() {
		assert.Equal(t, "x", v)
		count++
	}
	assert.Equal(t, 1, count)
}

func TestToSeqStopsOnBreak(t *testing.T) {
	for range option.ToSeq(option.Some(1)) {
		break
	}
}
