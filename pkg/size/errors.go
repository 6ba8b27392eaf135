package size

import "fmt"

// ErrorKind classifies why a size literal was rejected.
type ErrorKind uint8

const (
	// KindEmpty means the input had zero length.
	KindEmpty ErrorKind = iota + 1
	// KindNoNum means no digits were found. The current grammar never
	// produces it: a literal without digits has an implicit magnitude of 0.
	KindNoNum
	// KindInvalidByte means a byte was neither an ASCII digit nor an ASCII letter.
	KindInvalidByte
	// KindInvalidUnit means the unit letter is not one of b, k, m, g, t.
	KindInvalidUnit
	// KindMultiChar means a byte followed the unit letter.
	KindMultiChar
	// KindOverflow means the magnitude or the resulting byte count does not
	// fit in 64 bits.
	KindOverflow
)

func (k ErrorKind) String() string {
	switch k {
	case KindEmpty:
		return "Empty"
	case KindNoNum:
		return "NoNum"
	case KindInvalidByte:
		return "InvalidByte"
	case KindInvalidUnit:
		return "InvalidUnit"
	case KindMultiChar:
		return "MultiChar"
	case KindOverflow:
		return "Overflow"
	default:
		return fmt.Sprintf("ErrorKind(%d)", uint8(k))
	}
}

// ParseError is returned for every rejected literal. Byte is set for
// KindInvalidByte and Unit for KindInvalidUnit.
type ParseError struct {
	Kind ErrorKind
	Byte byte
	Unit rune
}

// Sentinels for use with errors.Is. They match any ParseError of the same
// kind regardless of the offending byte or unit.
var (
	ErrEmpty       = &ParseError{Kind: KindEmpty}
	ErrNoNum       = &ParseError{Kind: KindNoNum}
	ErrInvalidByte = &ParseError{Kind: KindInvalidByte}
	ErrInvalidUnit = &ParseError{Kind: KindInvalidUnit}
	ErrMultiChar   = &ParseError{Kind: KindMultiChar}
	ErrOverflow    = &ParseError{Kind: KindOverflow}
)

// InvalidByte returns the error reported for the raw byte b.
func InvalidByte(b byte) *ParseError {
	return &ParseError{Kind: KindInvalidByte, Byte: b}
}

// InvalidUnit returns the error reported for the unit letter c.
func InvalidUnit(c rune) *ParseError {
	return &ParseError{Kind: KindInvalidUnit, Unit: c}
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case KindEmpty:
		return "size: empty input"
	case KindNoNum:
		return "size: no number in input"
	case KindInvalidByte:
		return fmt.Sprintf("size: invalid byte %q (0x%02x)", e.Byte, e.Byte)
	case KindInvalidUnit:
		return fmt.Sprintf("size: invalid unit %q", e.Unit)
	case KindMultiChar:
		return "size: unexpected character after unit"
	case KindOverflow:
		return "size: value overflows a 64-bit byte count"
	default:
		return "size: " + e.Kind.String()
	}
}

// Is reports whether target describes the same failure. The Err sentinels
// match any ParseError of their kind; any other target must also carry the
// same Byte and Unit.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	if !ok || t.Kind != e.Kind {
		return false
	}
	if t == sentinel(t.Kind) {
		return true
	}
	return t.Byte == e.Byte && t.Unit == e.Unit
}

func sentinel(k ErrorKind) *ParseError {
	switch k {
	case KindEmpty:
		return ErrEmpty
	case KindNoNum:
		return ErrNoNum
	case KindInvalidByte:
		return ErrInvalidByte
	case KindInvalidUnit:
		return ErrInvalidUnit
	case KindMultiChar:
		return ErrMultiChar
	case KindOverflow:
		return ErrOverflow
	default:
		return nil
	}
}
