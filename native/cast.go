package native

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// ErrCoercion reports a value that cannot be converted to the requested kind.
var ErrCoercion = errors.New("value cannot be coerced to native kind")

// Cast converts v to the in-memory representation of kind.
//
// Every kind is bound to an explicit, total conversion: values already in the
// target representation pass through untouched, recognized source types are
// converted, everything else fails with a wrapped ErrCoercion. Nil is never
// accepted here; null handling is the caller's concern.
func Cast(kind KindEnum, v any) (any, error) {
	switch kind {
	default:
		return nil, fmt.Errorf("%w: unsupported kind %s", ErrCoercion, kind)
	case KindString:
		return castString(v)
	case KindInt:
		n, err := castInt64(v)
		if err != nil {
			return nil, err
		}
		if n < math.MinInt32 || n > math.MaxInt32 {
			return nil, fmt.Errorf("%w: %d overflows int", ErrCoercion, n)
		}
		return int32(n), nil
	case KindLong:
		return castInt64(v)
	case KindFloat:
		f, err := castFloat64(v)
		if err != nil {
			return nil, err
		}
		return float32(f), nil
	case KindDouble:
		return castFloat64(v)
	case KindBool:
		return castBool(v)
	case KindBytes:
		return castBytes(v)
	case KindDecimal:
		return castDecimal(v)
	case KindSequence, KindSet:
		return castSequence(v)
	case KindMapping:
		return castMapping(v)
	}
}

func castString(v any) (any, error) {
	switch val := v.(type) {
	case string:
		return val, nil
	case []byte:
		return string(val), nil
	case bool:
		return strconv.FormatBool(val), nil
	case fmt.Stringer:
		return val.String(), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	default:
		return nil, fmt.Errorf("%w: %T to string", ErrCoercion, v)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64), nil
	case reflect.Map, reflect.Slice:
		// json/jsonb columns receive decoded documents; re-encode them.
		buf, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %T to json string: %v", ErrCoercion, v, err)
		}
		return string(buf), nil
	}
}

func castInt64(v any) (int64, error) {
	if t, ok := v.(time.Time); ok {
		return t.UnixMilli(), nil
	}

	switch val := v.(type) {
	case bool:
		if val {
			return 1, nil
		}
		return 0, nil
	case string:
		n, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q to integer", ErrCoercion, val)
		}
		return n, nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	default:
		return 0, fmt.Errorf("%w: %T to integer", ErrCoercion, v)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return 0, fmt.Errorf("%w: %d overflows long", ErrCoercion, u)
		}
		return int64(u), nil
	case reflect.Float32, reflect.Float64:
		return int64(rv.Float()), nil
	}
}

func castFloat64(v any) (float64, error) {
	if s, ok := v.(string); ok {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q to float", ErrCoercion, s)
		}
		return f, nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	default:
		return 0, fmt.Errorf("%w: %T to float", ErrCoercion, v)
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), nil
	}
}

func castBool(v any) (any, error) {
	switch val := v.(type) {
	case bool:
		return val, nil
	case string:
		b, err := strconv.ParseBool(val)
		if err != nil {
			return nil, fmt.Errorf("%w: %q to boolean", ErrCoercion, val)
		}
		return b, nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	default:
		return nil, fmt.Errorf("%w: %T to boolean", ErrCoercion, v)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() != 0, nil
	}
}

func castBytes(v any) (any, error) {
	switch val := v.(type) {
	default:
		return nil, fmt.Errorf("%w: %T to bytes", ErrCoercion, v)
	case []byte:
		return val, nil
	case string:
		return []byte(val), nil
	}
}

func castDecimal(v any) (any, error) {
	switch val := v.(type) {
	case decimal.Decimal:
		return val, nil
	case string:
		d, err := decimal.NewFromString(val)
		if err != nil {
			return nil, fmt.Errorf("%w: %q to decimal", ErrCoercion, val)
		}
		return d, nil
	case []byte:
		d, err := decimal.NewFromString(string(val))
		if err != nil {
			return nil, fmt.Errorf("%w: %q to decimal", ErrCoercion, val)
		}
		return d, nil
	case float32:
		return decimal.NewFromFloat32(val), nil
	case float64:
		return decimal.NewFromFloat(val), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	default:
		return nil, fmt.Errorf("%w: %T to decimal", ErrCoercion, v)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return decimal.NewFromInt(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return decimal.NewFromUint64(rv.Uint()), nil
	}
}

// castSequence flattens any slice or array into []any, dropping nil elements
// the way the upstream pipeline expects for Postgres array values.
func castSequence(v any) (any, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, fmt.Errorf("%w: %T to sequence", ErrCoercion, v)
	}

	out := make([]any, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		el := rv.Index(i).Interface()
		if el == nil {
			continue
		}
		out = append(out, el)
	}
	return out, nil
}

func castMapping(v any) (any, error) {
	if m, ok := v.(map[string]any); ok {
		return m, nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, fmt.Errorf("%w: %T to mapping", ErrCoercion, v)
	}

	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, nil
}
