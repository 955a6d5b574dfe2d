// Package pgtype maps Postgres type names to their Avro representation.
//
// The table is built once at process init and never mutated afterwards, so
// Lookup is safe for concurrent use. Matching is exact and case-sensitive:
// anything not registered fails with ErrUnknownType rather than being guessed
// at.
package pgtype

import (
	"errors"
	"fmt"

	"pgavro/native"
)

// ErrUnknownType reports a database type name absent from the table.
var ErrUnknownType = errors.New("unknown database type")

// Logical type names attached to some Avro base types.
const (
	LogicalDate            = "date"
	LogicalTimestampMillis = "timestamp-millis"
	LogicalDecimal         = "decimal"
)

// Entry describes how a single database type serializes.
type Entry struct {
	Avro    string          // Avro base type name, e.g. "int", "string"
	Kind    native.KindEnum // in-memory representation the coercer targets
	Logical string          // Avro logical type, empty for none
	Elem    *Entry          // element entry for range/vector types that are arrays by themselves
}

var table map[string]Entry

// init flips the Avro-grouped registrations into the name-keyed table; the
// groupings mirror how Postgres documents its aliases (int4 = integer and so
// on).
func init() {
	table = make(map[string]Entry)

	register(Entry{Avro: "boolean", Kind: native.KindBool},
		"boolean", "bool")
	register(Entry{Avro: "string", Kind: native.KindString},
		"char", "character", "bpchar",
		"enum", // TODO: emit a proper Avro enum once downstream writers accept one.
		"json", "jsonb", "inet", "text", "uuid",
		"varchar", "character varying", "interval")
	register(Entry{Avro: "int", Kind: native.KindInt},
		"smallint", "integer", "int", "int2", "int4")
	register(Entry{Avro: "int", Kind: native.KindInt, Logical: LogicalDate},
		"date")
	register(Entry{Avro: "int", Kind: native.KindInt, Logical: LogicalTimestampMillis},
		"time")
	register(Entry{Avro: "long", Kind: native.KindLong},
		"bigint", "int8")
	register(Entry{Avro: "long", Kind: native.KindLong, Logical: LogicalTimestampMillis},
		"timestamp", "timestamptz",
		"timestamp without time zone", "timestamp with time zone")
	register(Entry{Avro: "float", Kind: native.KindFloat},
		"real", "float4")
	register(Entry{Avro: "double", Kind: native.KindDouble},
		"float8", "double precision", "double_precision")
	register(Entry{Avro: "bytes", Kind: native.KindDecimal, Logical: LogicalDecimal},
		"numeric")

	// Range and vector types are arrays in their own right; each gets an
	// explicit element entry so the emitted schema always carries items.
	registerArray(Entry{Avro: "string", Kind: native.KindString}, "array")
	registerArray(Entry{Avro: "int", Kind: native.KindInt, Logical: LogicalDate}, "daterange")
	registerArray(Entry{Avro: "int", Kind: native.KindInt}, "int4range", "int2vector")
}

func register(entry Entry, names ...string) {
	for _, name := range names {
		table[name] = entry
	}
}

func registerArray(elem Entry, names ...string) {
	for _, name := range names {
		el := elem
		table[name] = Entry{Avro: "array", Kind: native.KindSequence, Elem: &el}
	}
}

// Lookup resolves a database type name to its serialization entry.
// The match is exact: no prefix, suffix or case folding is attempted.
func Lookup(name string) (Entry, error) {
	entry, ok := table[name]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
	return entry, nil
}
