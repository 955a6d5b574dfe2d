package native

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

// KindEnum is the closed set of in-memory value representations a coerced
// field value may have before it is handed to the Avro encoder.
type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindString
	KindInt  // 32-bit signed, Avro "int"
	KindLong // 64-bit signed, Avro "long"
	KindFloat
	KindDouble
	KindBool
	KindBytes
	KindDecimal // fixed-precision decimal, Avro bytes + logical decimal
	KindSequence
	KindSet
	KindMapping

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

func (k KindEnum) IsNumber() bool {
	switch k {
	default:
		return false
	case KindInt, KindLong, KindFloat, KindDouble, KindDecimal:
		return true
	}
}

func (k KindEnum) IsInteger() bool {
	switch k {
	default:
		return false
	case KindInt, KindLong:
		return true
	}
}

func (k KindEnum) IsFloat() bool {
	switch k {
	default:
		return false
	case KindFloat, KindDouble:
		return true
	}
}

// IsComposite reports whether the kind holds other values rather than a scalar.
func (k KindEnum) IsComposite() bool {
	switch k {
	default:
		return false
	case KindSequence, KindSet, KindMapping:
		return true
	}
}

func (k KindEnum) Valid() bool {
	return k > 0 && int(k) < KindTotal
}
