package odinsrc

// Kind classifies a top-level declaration
// by the leading token of its right-hand side.
type Kind int

// Supported declaration kinds.
// Anything whose right-hand side doesn't open with
// a known type constructor is a Constant.
const (
	Constant Kind = iota
	Procedure
	Struct
	Enum
	Union
	BitSet
)

var _kindNames = [...]string{
	Constant:  "constant",
	Procedure: "procedure",
	Struct:    "struct",
	Enum:      "enum",
	Union:     "union",
	BitSet:    "bit_set",
}

func (k Kind) String() string {
	if int(k) < len(_kindNames) {
		return _kindNames[k]
	}
	return "constant"
}

// IsType reports whether declarations of this kind
// bind a type rather than a value.
func (k Kind) IsType() bool {
	switch k {
	case Struct, Enum, Union, BitSet:
		return true
	default:
		return false
	}
}

// Decl is a single documented top-level declaration
// extracted from an Odin source file.
//
// Decls are produced only by the scanner
// and are immutable once produced.
type Decl struct {
	// Name bound by the declaration.
	Name string

	// Kind of the declaration.
	Kind Kind

	// Signature is the right-hand side of the binding
	// with any body stripped.
	Signature string

	// Doc is the contiguous comment block
	// immediately preceding the declaration,
	// comment markers stripped, lines joined by newline.
	// Blank lines inside the block are preserved
	// as paragraph separators.
	//
	// Empty if the declaration has no doc comment.
	Doc string

	// File and Line locate the declaration in its source.
	// Line is 1-based.
	File string
	Line int

	// Private marks declarations hidden from package listings:
	// tagged @(private), or named with a leading underscore
	// or lowercase letter.
	Private bool
}
