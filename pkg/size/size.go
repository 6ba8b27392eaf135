// Package size parses byte-size literals such as "5", "5b", "100k" or "5T"
// into a Size and converts a Size into an exact byte count.
//
// A literal is a run of ASCII decimal digits followed by at most one unit
// letter. Units are case-insensitive and binary: b (1), k (1024), m (1024²),
// g (1024³) and t (1024⁴). A literal without a unit is a byte count.
//
// Anything else is rejected with a *ParseError: whitespace, signs, fractions
// and any byte after the unit letter, including another digit ("5b5").
package size

import (
	"math"
	"math/bits"
	"strconv"
)

// Unit selects the scale factor of a Size.
type Unit uint8

const (
	Byte Unit = iota
	Kilobyte
	Megabyte
	Gigabyte
	Terabyte
)

// Factor returns the number of bytes in one u.
func (u Unit) Factor() uint64 {
	switch u {
	case Byte:
		return 1
	case Kilobyte:
		return 1 << 10
	case Megabyte:
		return 1 << 20
	case Gigabyte:
		return 1 << 30
	case Terabyte:
		return 1 << 40
	default:
		panic("size: unknown unit " + strconv.Itoa(int(u)))
	}
}

func (u Unit) String() string {
	switch u {
	case Byte:
		return "Byte"
	case Kilobyte:
		return "Kilobyte"
	case Megabyte:
		return "Megabyte"
	case Gigabyte:
		return "Gigabyte"
	case Terabyte:
		return "Terabyte"
	default:
		return "Unit(" + strconv.Itoa(int(u)) + ")"
	}
}

// Suffix returns the canonical unit letter used when formatting.
func (u Unit) Suffix() string {
	switch u {
	case Byte:
		return "B"
	case Kilobyte:
		return "K"
	case Megabyte:
		return "M"
	case Gigabyte:
		return "G"
	case Terabyte:
		return "T"
	default:
		panic("size: unknown unit " + strconv.Itoa(int(u)))
	}
}

// unitFor maps a lowercase unit letter to its Unit.
func unitFor(c byte) (Unit, bool) {
	switch c {
	case 'b':
		return Byte, true
	case 'k':
		return Kilobyte, true
	case 'm':
		return Megabyte, true
	case 'g':
		return Gigabyte, true
	case 't':
		return Terabyte, true
	default:
		return 0, false
	}
}

// Size is a magnitude tagged with its unit. The zero value is 0 bytes.
// Sizes are comparable: two sizes are equal when both unit and magnitude
// match, so Kilobyte(1) and Byte(1024) differ even though Bytes agrees.
type Size struct {
	unit      Unit
	magnitude uint64
}

// New returns n units of u. It panics if u is not one of the declared units.
func New(u Unit, n uint64) Size {
	if u > Terabyte {
		panic("size: unknown unit " + strconv.Itoa(int(u)))
	}
	return Size{unit: u, magnitude: n}
}

// Unit returns the unit s was written in.
func (s Size) Unit() Unit { return s.unit }

// Magnitude returns the count before scaling.
func (s Size) Magnitude() uint64 { return s.magnitude }

// Bytes returns the exact byte count. Sizes produced by Parse always fit;
// a Size built with New whose byte count exceeds 64 bits saturates at
// math.MaxUint64.
func (s Size) Bytes() uint64 {
	hi, lo := bits.Mul64(s.magnitude, s.unit.Factor())
	if hi != 0 {
		return math.MaxUint64
	}
	return lo
}

// String formats s as a literal Parse accepts, such as "100K".
func (s Size) String() string {
	return strconv.FormatUint(s.magnitude, 10) + s.unit.Suffix()
}

// GoString formats s for %#v as the Go expression that builds it, such as
// "size.New(size.Kilobyte, 100)".
func (s Size) GoString() string {
	return "size.New(size." + s.unit.String() + ", " + strconv.FormatUint(s.magnitude, 10) + ")"
}

// Parse parses a size literal.
func Parse(text string) (Size, error) {
	return parse([]byte(text))
}

// MustParse is like Parse but panics on error. It is meant for literals
// known at compile time.
func MustParse(text string) Size {
	s, err := Parse(text)
	if err != nil {
		panic(`size: MustParse(` + strconv.Quote(text) + `): ` + err.Error())
	}
	return s
}

func parse(input []byte) (Size, error) {
	st, err := scan(input)
	if err != nil {
		return Size{}, err
	}
	if !st.hasUnit() {
		return Size{unit: Byte, magnitude: st.magnitude}, nil
	}
	c := toLowerASCII(st.unit)
	if !isLetter(c) {
		return Size{}, InvalidUnit(rune(st.unit))
	}
	u, ok := unitFor(c)
	if !ok {
		return Size{}, InvalidUnit(rune(c))
	}
	if hi, _ := bits.Mul64(st.magnitude, u.Factor()); hi != 0 {
		return Size{}, &ParseError{Kind: KindOverflow}
	}
	return Size{unit: u, magnitude: st.magnitude}, nil
}

// MarshalText implements encoding.TextMarshaler.
func (s Size) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, so a Size can be
// decoded directly from JSON strings, YAML and TOML scalars.
func (s *Size) UnmarshalText(text []byte) error {
	v, err := parse(text)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Set implements flag.Value and pflag.Value.
func (s *Size) Set(value string) error {
	return s.UnmarshalText([]byte(value))
}

// Type implements pflag.Value.
func (s *Size) Type() string {
	return "size"
}
