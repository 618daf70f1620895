package integer

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Packed decimal sign nibbles.
const (
	signPlus     = 0b1100
	signMinus    = 0b1101
	signUnsigned = 0b1111
)

// MarshalBinary implements encoding.BinaryMarshaler.
func (x Int) MarshalBinary() (data []byte, err error) {
	// Note: the canonical zero has no digits, but we desire zero to be an
	// actual zero digit in the packed form.
	nibbles := x.Digits()
	if len(nibbles) == 0 {
		nibbles = []uint8{0}
	}

	if x.neg {
		nibbles = append(nibbles, signMinus)
	} else {
		nibbles = append(nibbles, signPlus)
	}

	if len(nibbles)%2 == 1 {
		nibbles = append([]uint8{0}, nibbles...)
	}

	data = make([]byte, len(nibbles)/2)
	for i := range data {
		data[i] = nibbles[2*i]<<4 | nibbles[2*i+1]
	}

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (x *Int) UnmarshalBinary(data []byte) (err error) {
	if len(data) == 0 {
		return Error.New("%w: no data", ErrInvalidEncoding)
	}

	var neg bool

	switch sign := data[len(data)-1] & 0b1111; sign {
	case signPlus, signUnsigned:
	case signMinus:
		neg = true
	default:
		return Error.New("%w: sign nibble %04b", ErrInvalidEncoding, sign)
	}

	n := 2*len(data) - 1
	digits := make([]uint8, n)

	for i := 0; i < n; i++ {
		nibble := data[i/2] >> 4
		if i%2 == 1 {
			nibble = data[i/2] & 0b1111
		}

		if nibble > 9 {
			return Error.New("%w: digit nibble %04b at %d", ErrInvalidEncoding, nibble, i)
		}

		digits[n-1-i] = nibble
	}

	*x = normalize(Int{neg: neg, digits: digits})

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (x Int) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (x *Int) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}

	*x = v

	return nil
}

// MarshalJSON implements json.Marshaler. Values are written as strings so
// that decoders limited to float64 keep every digit.
func (x Int) MarshalJSON() ([]byte, error) {
	return []byte(`"` + x.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler. Both quoted strings and bare
// JSON integers are accepted; null leaves x unchanged.
func (x *Int) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}

	return x.UnmarshalText(data)
}

// Format implements fmt.Formatter. The verbs v, s and d print the decimal
// form; the '+' flag forces a sign and a width pads with spaces (on the
// right with the '-' flag).
func (x Int) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v', 's', 'd':
	default:
		fmt.Fprintf(s, "%%!%c(integer.Int=%s)", verb, x.String())

		return
	}

	str := x.String()
	if s.Flag('+') && !x.neg {
		str = "+" + str
	}

	if w, ok := s.Width(); ok && len(str) < w {
		pad := strings.Repeat(" ", w-len(str))
		if s.Flag('-') {
			str += pad
		} else {
			str = pad + str
		}
	}

	io.WriteString(s, str)
}
