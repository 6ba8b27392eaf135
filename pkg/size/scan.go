package size

import "math/bits"

// scanState accumulates a literal left to right. A zero unit means no unit
// letter has been seen yet; once set, every further byte is rejected.
type scanState struct {
	magnitude uint64
	unit      byte
}

func (s *scanState) hasUnit() bool {
	return s.unit != 0
}

// add consumes one byte.
func (s *scanState) add(b byte) error {
	if s.hasUnit() {
		return &ParseError{Kind: KindMultiChar}
	}
	switch {
	case isDigit(b):
		hi, lo := bits.Mul64(s.magnitude, 10)
		sum, carry := bits.Add64(lo, uint64(b-'0'), 0)
		if hi != 0 || carry != 0 {
			return &ParseError{Kind: KindOverflow}
		}
		s.magnitude = sum
	case isLetter(b):
		s.unit = b
	default:
		return InvalidByte(b)
	}
	return nil
}

// scan runs the whole input through a fresh scanState.
func scan(input []byte) (scanState, error) {
	if len(input) == 0 {
		return scanState{}, &ParseError{Kind: KindEmpty}
	}
	var st scanState
	for _, b := range input {
		if err := st.add(b); err != nil {
			return scanState{}, err
		}
	}
	return st, nil
}

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

func isLetter(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

// toLowerASCII folds A-Z only. Anything else, including non-ASCII, is
// returned unchanged.
func toLowerASCII(b byte) byte {
	if 'A' <= b && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}
