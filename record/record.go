// Package record converts individual database rows into Avro-ready records
// using a previously built schema.
//
// A row may be a map keyed by field name, a positional slice in schema field
// order, or a struct with matching fields. Conversion is pure and touches no
// shared state: one schema can drive any number of concurrent FromRow calls.
package record

import (
	"errors"
	"fmt"
	"time"

	"pgavro/internal/shape"
	"pgavro/native"
	"pgavro/pgtype"
	"pgavro/schema"
)

var (
	// ErrUnsupportedRowFormat reports a row input that matches none of the
	// recognized shapes.
	ErrUnsupportedRowFormat = errors.New("unsupported row format")
	// ErrRowLengthMismatch reports a positional row whose length differs from
	// the schema's field count.
	ErrRowLengthMismatch = errors.New("row length does not match schema")
	// ErrMissingField reports a non-nullable field absent from a keyed or
	// struct row.
	ErrMissingField = errors.New("row is missing required field")
	// ErrNullValue reports a null supplied for a non-nullable field.
	ErrNullValue = errors.New("null value for non-nullable field")
)

const millisPerDay = 24 * 60 * 60 * 1000

// Record maps field names to coerced native values. It is created fresh per
// row and carries no state beyond the call that produced it; iterate
// schema.Fields to visit values in schema order.
type Record map[string]any

// FromRow extracts field values from row and coerces each to its field's
// native kind. Any extraction or coercion failure aborts the whole row.
func FromRow(row any, s *schema.Schema) (Record, error) {
	values, err := extract(row, s)
	if err != nil {
		return nil, err
	}

	out := make(Record, len(s.Fields))
	for i, f := range s.Fields {
		v, err := coerce(values[i], f)
		if err != nil {
			return nil, err
		}
		out[f.Name] = v
	}

	return out, nil
}

// extract pulls raw values out of row, one per schema field, in field order.
// A nullable field absent from a keyed or struct row extracts as null.
func extract(row any, s *schema.Schema) ([]any, error) {
	switch shape.Detect(row) {
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedRowFormat, row)

	case shape.Sequence:
		values := shape.Elems(row)
		if len(values) != len(s.Fields) {
			return nil, fmt.Errorf("%w: %d values for %d fields",
				ErrRowLengthMismatch, len(values), len(s.Fields))
		}
		return values, nil

	case shape.Mapping, shape.Attribute:
		values := make([]any, len(s.Fields))
		for i, f := range s.Fields {
			v, ok := shape.Field(row, f.Name)
			if !ok {
				if !f.Nullable {
					return nil, fmt.Errorf("%w: %q", ErrMissingField, f.Name)
				}
				continue
			}
			values[i] = v
		}
		return values, nil
	}
}

func coerce(v any, f schema.Field) (any, error) {
	if shape.IsNil(v) {
		if !f.Nullable {
			return nil, fmt.Errorf("%w: %q", ErrNullValue, f.Name)
		}
		return nil, nil
	}

	if f.IsArray {
		if shape.Detect(v) != shape.Sequence {
			return nil, fmt.Errorf("field %q: %w: %T as array value",
				f.Name, native.ErrCoercion, v)
		}

		elems := shape.Elems(v)
		out := make([]any, 0, len(elems))
		for _, el := range elems {
			if shape.IsNil(el) {
				// Postgres arrays may hold NULL elements, Avro item types
				// here do not; drop them.
				continue
			}
			cv, err := coerceScalar(el, f)
			if err != nil {
				return nil, err
			}
			out = append(out, cv)
		}
		return out, nil
	}

	return coerceScalar(v, f)
}

func coerceScalar(v any, f schema.Field) (any, error) {
	// date fields count days since epoch, not milliseconds
	if t, ok := v.(time.Time); ok && f.Type.Logical == pgtype.LogicalDate {
		v = t.UnixMilli() / millisPerDay
	}

	out, err := native.Cast(f.Type.Kind, v)
	if err != nil {
		return nil, fmt.Errorf("field %q: %w", f.Name, err)
	}
	return out, nil
}
