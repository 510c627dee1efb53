package facts

type Fact uint8

const (
	// maximumFactValue is the value of the highest currently known Fact.
	maximumFactValue = 5

	// None is the default value for Fact.
	// Getting a Fact of type None means there are no facts for the given key.
	None Fact = 0

	// OpaqueType is a type whose only known property is its layout.
	OpaqueType Fact = 1

	// StructType is a struct with known fields.
	StructType Fact = 2

	// AliasType is a type alias.
	AliasType Fact = 3

	// Function is an extern function.
	Function Fact = 4

	// Constant is a constant or variable value.
	Constant Fact = 5
)

// IsType reports whether the fact names a type that other declarations may
// refer to.
func (f Fact) IsType() bool {
	return f == OpaqueType || f == StructType || f == AliasType
}

func (f Fact) String() string {
	switch f {
	case None:
		return "None"
	case OpaqueType:
		return "Opaque"
	case StructType:
		return "Struct"
	case AliasType:
		return "Alias"
	case Function:
		return "Function"
	case Constant:
		return "Constant"
	default:
		return "Unknown"
	}
}
