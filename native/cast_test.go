package native_test

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pgavro/native"
)

func TestCastString(t *testing.T) {
	t.Parallel()

	for name, tc := range map[string]struct {
		in   any
		want string
	}{
		"identity":  {"hello", "hello"},
		"bytes":     {[]byte("raw"), "raw"},
		"bool":      {true, "true"},
		"int":       {42, "42"},
		"float":     {2.5, "2.5"},
		"stringer":  {time.Hour, "1h0m0s"},
		"json map":  {map[string]any{"k": "v"}, `{"k":"v"}`},
		"json list": {[]int{1, 2}, `[1,2]`},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := native.Cast(native.KindString, tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := native.Cast(native.KindString, struct{}{})
	assert.ErrorIs(t, err, native.ErrCoercion)
}

func TestCastIntegers(t *testing.T) {
	t.Parallel()

	got, err := native.Cast(native.KindInt, 7)
	require.NoError(t, err)
	assert.Equal(t, int32(7), got)

	got, err = native.Cast(native.KindInt, "12")
	require.NoError(t, err)
	assert.Equal(t, int32(12), got)

	got, err = native.Cast(native.KindInt, 3.9)
	require.NoError(t, err)
	assert.Equal(t, int32(3), got, "fractional part truncates")

	got, err = native.Cast(native.KindInt, true)
	require.NoError(t, err)
	assert.Equal(t, int32(1), got)

	_, err = native.Cast(native.KindInt, int64(math.MaxInt32)+1)
	assert.ErrorIs(t, err, native.ErrCoercion, "int overflow must fail")

	_, err = native.Cast(native.KindInt, "seven")
	assert.ErrorIs(t, err, native.ErrCoercion)

	got, err = native.Cast(native.KindLong, int64(math.MaxInt64))
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), got)

	got, err = native.Cast(native.KindLong, time.Unix(1, 0))
	require.NoError(t, err)
	assert.Equal(t, int64(1000), got, "time coerces to epoch milliseconds")

	_, err = native.Cast(native.KindLong, uint64(math.MaxUint64))
	assert.ErrorIs(t, err, native.ErrCoercion)
}

func TestCastFloats(t *testing.T) {
	t.Parallel()

	got, err := native.Cast(native.KindFloat, 1.0)
	require.NoError(t, err)
	assert.Equal(t, float32(1.0), got)

	got, err = native.Cast(native.KindDouble, float32(2.5))
	require.NoError(t, err)
	assert.Equal(t, 2.5, got)

	got, err = native.Cast(native.KindDouble, 2.5)
	require.NoError(t, err)
	assert.Equal(t, 2.5, got, "identity pass-through, no re-rounding")

	got, err = native.Cast(native.KindDouble, "3.25")
	require.NoError(t, err)
	assert.Equal(t, 3.25, got)

	got, err = native.Cast(native.KindDouble, 10)
	require.NoError(t, err)
	assert.Equal(t, 10.0, got)

	_, err = native.Cast(native.KindDouble, "not a number")
	assert.ErrorIs(t, err, native.ErrCoercion)
}

func TestCastBool(t *testing.T) {
	t.Parallel()

	got, err := native.Cast(native.KindBool, true)
	require.NoError(t, err)
	assert.Equal(t, true, got)

	got, err = native.Cast(native.KindBool, "true")
	require.NoError(t, err)
	assert.Equal(t, true, got)

	got, err = native.Cast(native.KindBool, 0)
	require.NoError(t, err)
	assert.Equal(t, false, got)

	_, err = native.Cast(native.KindBool, "maybe")
	assert.ErrorIs(t, err, native.ErrCoercion)
}

func TestCastBytes(t *testing.T) {
	t.Parallel()

	got, err := native.Cast(native.KindBytes, "abc")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), got)

	got, err = native.Cast(native.KindBytes, []byte{1, 2})
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2}, got)

	_, err = native.Cast(native.KindBytes, 42)
	assert.ErrorIs(t, err, native.ErrCoercion)
}

func TestCastDecimal(t *testing.T) {
	t.Parallel()

	want := decimal.RequireFromString("12.34")

	got, err := native.Cast(native.KindDecimal, "12.34")
	require.NoError(t, err)
	assert.True(t, want.Equal(got.(decimal.Decimal)))

	got, err = native.Cast(native.KindDecimal, want)
	require.NoError(t, err)
	assert.True(t, want.Equal(got.(decimal.Decimal)), "identity pass-through")

	got, err = native.Cast(native.KindDecimal, 5)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(5).Equal(got.(decimal.Decimal)))

	got, err = native.Cast(native.KindDecimal, 2.5)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromFloat(2.5).Equal(got.(decimal.Decimal)))

	_, err = native.Cast(native.KindDecimal, "twelve")
	assert.ErrorIs(t, err, native.ErrCoercion)
}

func TestCastComposites(t *testing.T) {
	t.Parallel()

	got, err := native.Cast(native.KindSequence, []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, got)

	got, err = native.Cast(native.KindSequence, []any{"a", nil, "b"})
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, got, "nil elements are dropped")

	_, err = native.Cast(native.KindSequence, "not a slice")
	assert.ErrorIs(t, err, native.ErrCoercion)

	got, err = native.Cast(native.KindMapping, map[string]int{"a": 1})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": 1}, got)

	_, err = native.Cast(native.KindMapping, map[int]string{1: "a"})
	assert.ErrorIs(t, err, native.ErrCoercion)

	_, err = native.Cast(native.KindEnum(0), "anything")
	assert.ErrorIs(t, err, native.ErrCoercion)
}
