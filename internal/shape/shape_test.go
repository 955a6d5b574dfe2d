package shape_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pgavro/internal/shape"
)

type row struct {
	Name   string
	Number float64
	hidden int
}

func TestDetect(t *testing.T) {
	t.Parallel()

	assert.Equal(t, shape.Mapping, shape.Detect(map[string]any{}))
	assert.Equal(t, shape.Sequence, shape.Detect([]any{1, 2}))
	assert.Equal(t, shape.Sequence, shape.Detect([2]string{"a", "b"}))
	assert.Equal(t, shape.Attribute, shape.Detect(row{}))
	assert.Equal(t, shape.Attribute, shape.Detect(&row{}))

	assert.Equal(t, shape.Unknown, shape.Detect(nil))
	assert.Equal(t, shape.Unknown, shape.Detect(42))
	assert.Equal(t, shape.Unknown, shape.Detect("text"))
	assert.Equal(t, shape.Unknown, shape.Detect([]byte("blob")), "byte slices are scalars")
	assert.Equal(t, shape.Unknown, shape.Detect(map[int]string{}), "non-string keys are not a mapping")
	assert.Equal(t, shape.Unknown, shape.Detect((*row)(nil)))
}

func TestDetectPriority(t *testing.T) {
	t.Parallel()

	// a map type with methods still dispatches as a mapping, never as an
	// attribute object
	type namedMap map[string]any

	assert.Equal(t, shape.Mapping, shape.Detect(namedMap{"a": 1}))
}

func TestField(t *testing.T) {
	t.Parallel()

	v, ok := shape.Field(map[string]any{"name": "John"}, "name")
	assert.True(t, ok)
	assert.Equal(t, "John", v)

	v, ok = shape.Field(map[string]any{"name": nil}, "name")
	assert.True(t, ok, "present nil key is not a missing key")
	assert.Nil(t, v)

	_, ok = shape.Field(map[string]any{}, "name")
	assert.False(t, ok)

	v, ok = shape.Field(row{Name: "Jack", Number: 2}, "name")
	assert.True(t, ok, "struct fields match case-insensitively")
	assert.Equal(t, "Jack", v)

	v, ok = shape.Field(&row{Number: 3}, "number")
	assert.True(t, ok)
	assert.Equal(t, 3.0, v)

	_, ok = shape.Field(row{}, "missing")
	assert.False(t, ok)

	_, ok = shape.Field(row{hidden: 1}, "hidden")
	assert.False(t, ok, "unexported fields are unreadable")

	_, ok = shape.Field(42, "name")
	assert.False(t, ok)
}

func TestElems(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []any{"a", "b"}, shape.Elems([]string{"a", "b"}))
	assert.Equal(t, []any{1, nil}, shape.Elems([]any{1, nil}))
	assert.Empty(t, shape.Elems([]int{}))
	assert.Nil(t, shape.Elems("not a sequence"))
}

func TestIsNil(t *testing.T) {
	t.Parallel()

	assert.True(t, shape.IsNil(nil))
	assert.True(t, shape.IsNil((*int)(nil)))
	assert.True(t, shape.IsNil(map[string]any(nil)))
	assert.True(t, shape.IsNil([]int(nil)))

	assert.False(t, shape.IsNil(0))
	assert.False(t, shape.IsNil(""))
	assert.False(t, shape.IsNil([]int{}))

	n := 5
	assert.False(t, shape.IsNil(&n))
}
