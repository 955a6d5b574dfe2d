// Package schema builds Avro record schemas out of relational column
// metadata. Columns come in several shapes (maps, structs, sql.ColumnType
// values, or anything plus an explicit Mapping); the builder normalizes them,
// resolves their database types through the pgtype table and emits an
// immutable Schema whose field order equals the input column order.
package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"pgavro/native"
	"pgavro/pgtype"
)

// ErrDuplicateColumn reports two input columns normalizing to the same name.
var ErrDuplicateColumn = errors.New("duplicate column name")

// Numeric columns without explicit constraints get these, and anything with a
// scale beyond the threshold is retyped to double: consumers like BigQuery
// cannot take a decimal that wide.
// TODO: make the threshold a Build argument; a concrete request for that
// exists for a BigNumeric-backed sink.
const (
	numericPrecisionDefault     = 38
	numericScaleDefault         = 9
	numericRetypeScaleThreshold = 9
)

// Override replaces the type table resolution for a single column, keyed by
// the column's final name. The table is bypassed entirely: Avro is used as
// the target type name verbatim and Kind drives value coercion. Nullability
// is not touched by an override; the column's own flag stays authoritative.
type Override struct {
	Avro string
	Kind native.KindEnum
}

// Field is a single resolved schema entry. For array fields Type describes
// the element, not the array itself.
type Field struct {
	Name     string
	Type     pgtype.Entry
	Nullable bool
	IsArray  bool
	// decimal constraints, meaningful only when Type carries the decimal
	// logical type
	Precision int
	Scale     int
}

// Schema is a named, ordered Avro record description. It is immutable once
// built and safe to share across goroutines; one Schema is typically reused
// for every row of the table it was built from.
type Schema struct {
	Name      string
	Namespace string
	Fields    []Field
}

// Build resolves columns into a Schema.
//
// mapping may be nil when the columns already carry one of the recognized
// shapes. overrides may be nil; entries are keyed by final column name and
// bypass the type table for that column. Resolution is fail-fast: the first
// unknown type or unreadable column aborts with no partial schema.
func Build(
	tableName, namespace string,
	columns []any,
	mapping *Mapping,
	overrides map[string]Override,
) (*Schema, error) {
	out := &Schema{
		Name:      tableName,
		Namespace: namespace,
		Fields:    make([]Field, 0, len(columns)),
	}

	seen := make(map[string]struct{}, len(columns))

	for _, col := range columns {
		cc, err := normalizeColumn(col, mapping)
		if err != nil {
			return nil, err
		}

		if _, dup := seen[cc.name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, cc.name)
		}
		seen[cc.name] = struct{}{}

		field, err := resolveField(cc, overrides)
		if err != nil {
			return nil, err
		}

		out.Fields = append(out.Fields, field)
	}

	return out, nil
}

func resolveField(cc canonicalColumn, overrides map[string]Override) (Field, error) {
	field := Field{Name: cc.name, Nullable: cc.nullable}

	if o, ok := overrides[cc.name]; ok {
		field.Type = pgtype.Entry{Avro: o.Avro, Kind: o.Kind}
		return field, nil
	}

	raw := cc.typ
	switch {
	case strings.HasPrefix(raw, "_"):
		field.IsArray = true
		raw = raw[1:]
	case strings.HasSuffix(raw, "[]"):
		field.IsArray = true
		raw = raw[:len(raw)-2]
	}

	entry, err := pgtype.Lookup(raw)
	if err != nil {
		return Field{}, fmt.Errorf("column %q: %w", cc.name, err)
	}

	// range/vector types are arrays by themselves
	if entry.Elem != nil {
		field.IsArray = true
		entry = *entry.Elem
	}

	if entry.Logical == pgtype.LogicalDecimal {
		field.Precision = cc.precision
		field.Scale = cc.scale
		if field.Precision == 0 {
			field.Precision = numericPrecisionDefault
		}
		if field.Scale == 0 {
			field.Scale = numericScaleDefault
		}

		if field.Scale > numericRetypeScaleThreshold {
			entry = pgtype.Entry{Avro: "double", Kind: native.KindDouble}
			field.Precision, field.Scale = 0, 0
		}
	}

	field.Type = entry
	return field, nil
}

// AvroType returns the field's Avro type declaration: a bare type name, an
// annotated object for logical types, an array wrapper, and a
// ["null", ...] union for nullable fields, in that nesting order.
func (f Field) AvroType() any {
	var t any = f.Type.Avro

	if f.Type.Logical != "" {
		obj := map[string]any{
			"type":        f.Type.Avro,
			"logicalType": f.Type.Logical,
		}
		if f.Type.Logical == pgtype.LogicalDecimal {
			obj["precision"] = f.Precision
			obj["scale"] = f.Scale
		}
		t = obj
	}

	if f.IsArray {
		t = map[string]any{"type": "array", "items": t}
	}

	if f.Nullable {
		t = []any{"null", t}
	}

	return t
}

// MarshalJSON renders the schema in Avro JSON form, ready for an Avro writer
// to parse.
func (s *Schema) MarshalJSON() ([]byte, error) {
	type fieldJSON struct {
		Name string `json:"name"`
		Type any    `json:"type"`
	}

	fields := make([]fieldJSON, len(s.Fields))
	for i, f := range s.Fields {
		fields[i] = fieldJSON{Name: f.Name, Type: f.AvroType()}
	}

	return json.Marshal(struct {
		Type      string      `json:"type"`
		Name      string      `json:"name"`
		Namespace string      `json:"namespace"`
		Fields    []fieldJSON `json:"fields"`
	}{
		Type:      "record",
		Name:      s.Name,
		Namespace: s.Namespace,
		Fields:    fields,
	})
}
