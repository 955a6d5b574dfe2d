package schema

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"pgavro/internal/shape"
)

// ErrUnsupportedColumnFormat reports a column input that matches none of the
// recognized shapes, or one that is missing its name or type.
var ErrUnsupportedColumnFormat = errors.New("unsupported column format")

// Mapping tells the normalizer which key or field on the caller's column
// objects holds each canonical role. Zero-value roles other than Name and
// Type are simply not read and fall back to their defaults.
type Mapping struct {
	Name             string
	Type             string
	Nullable         string
	NumericPrecision string
	NumericScale     string
}

// SQLColumn is the native schema column shape. *database/sql.ColumnType
// satisfies it, so rows.ColumnTypes() output can be passed to Build directly.
type SQLColumn interface {
	Name() string
	DatabaseTypeName() string
}

type sqlNullable interface {
	Nullable() (nullable, ok bool)
}

type sqlDecimal interface {
	DecimalSize() (precision, scale int64, ok bool)
}

// canonicalColumn is the shape-independent column record the builder works
// on. Type is lower-cased here; the type table is case-sensitive and only
// registers lower-case names.
type canonicalColumn struct {
	name     string
	typ      string
	nullable bool
	// decimal constraints, 0 means unspecified
	precision int
	scale     int
}

// normalizeColumn extracts the canonical column record from any accepted
// column shape. Priority: explicit mapping, then the SQLColumn method set,
// then a map or struct carrying the canonical names directly.
func normalizeColumn(col any, mapping *Mapping) (canonicalColumn, error) {
	if mapping != nil {
		return mappedColumn(col, mapping)
	}

	if sc, ok := col.(SQLColumn); ok {
		return sqlColumn(sc), nil
	}

	switch shape.Detect(col) {
	default:
		return canonicalColumn{}, fmt.Errorf("%w: %T", ErrUnsupportedColumnFormat, col)
	case shape.Mapping, shape.Attribute:
		return mappedColumn(col, &Mapping{
			Name:             "name",
			Type:             "type",
			Nullable:         "nullable",
			NumericPrecision: "numeric_precision",
			NumericScale:     "numeric_scale",
		})
	}
}

func mappedColumn(col any, m *Mapping) (canonicalColumn, error) {
	out := canonicalColumn{nullable: true}

	v, ok := shape.Field(col, m.Name)
	if !ok {
		return out, fmt.Errorf("%w: no column name under %q", ErrUnsupportedColumnFormat, m.Name)
	}
	out.name, ok = stringValue(v)
	if !ok {
		return out, fmt.Errorf("%w: column name is %T, not a string", ErrUnsupportedColumnFormat, v)
	}

	v, ok = shape.Field(col, m.Type)
	if !ok {
		return out, fmt.Errorf("%w: no column type under %q", ErrUnsupportedColumnFormat, m.Type)
	}
	typ, ok := stringValue(v)
	if !ok {
		return out, fmt.Errorf("%w: column type is %T, not a string", ErrUnsupportedColumnFormat, v)
	}
	out.typ = strings.ToLower(typ)

	if m.Nullable != "" {
		if v, ok := shape.Field(col, m.Nullable); ok && !shape.IsNil(v) {
			if b, ok := v.(bool); ok {
				out.nullable = b
			}
		}
	}
	if m.NumericPrecision != "" {
		if v, ok := shape.Field(col, m.NumericPrecision); ok {
			out.precision, _ = intValue(v)
		}
	}
	if m.NumericScale != "" {
		if v, ok := shape.Field(col, m.NumericScale); ok {
			out.scale, _ = intValue(v)
		}
	}

	return out, nil
}

func sqlColumn(sc SQLColumn) canonicalColumn {
	out := canonicalColumn{
		name:     sc.Name(),
		typ:      strings.ToLower(sc.DatabaseTypeName()),
		nullable: true,
	}

	if n, ok := sc.(sqlNullable); ok {
		if nullable, known := n.Nullable(); known {
			out.nullable = nullable
		}
	}
	if d, ok := sc.(sqlDecimal); ok {
		if precision, scale, known := d.DecimalSize(); known {
			out.precision = int(precision)
			out.scale = int(scale)
		}
	}

	return out
}

func stringValue(v any) (string, bool) {
	switch val := v.(type) {
	default:
		return "", false
	case string:
		return val, true
	case []byte:
		return string(val), true
	case fmt.Stringer:
		return val.String(), true
	}
}

func intValue(v any) (int, bool) {
	if shape.IsNil(v) {
		return 0, false
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}

	switch rv.Kind() {
	default:
		return 0, false
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int(rv.Uint()), true
	}
}
