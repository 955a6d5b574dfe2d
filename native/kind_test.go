package native_test

import (
	"fmt"

	"pgavro/native"
)

func Example() {
	fmt.Println(native.KindInt)
	fmt.Println(native.KindDecimal)
	fmt.Println(native.KindDecimal.IsNumber())
	fmt.Println(native.KindLong.IsInteger(), native.KindDouble.IsInteger())
	fmt.Println(native.KindFloat.IsFloat())
	fmt.Println(native.KindSequence.IsComposite(), native.KindString.IsComposite())
	fmt.Println(native.KindEnum(0).Valid(), native.KindMapping.Valid())
	// Output:
	// KindInt
	// KindDecimal
	// true
	// true false
	// true
	// true false
	// false true
}
