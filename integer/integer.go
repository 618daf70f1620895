package integer

import (
	"math"
	"strings"

	"fortio.org/safecast"
)

// Int is a signed integer of unbounded magnitude.
type Int struct {
	neg bool

	// digits is the magnitude, least significant digit first. The
	// canonical zero has no digits.
	digits []uint8
}

// Integer is the set of native integer types accepted by Of.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

var (
	one = Int{digits: []uint8{1}}
	two = Int{digits: []uint8{2}}
)

// New returns v as an Int.
func New(v int64) Int {
	if v < 0 {
		// -(v+1) keeps math.MinInt64 in range.
		return fromUint64(true, uint64(-(v+1))+1)
	}

	return fromUint64(false, uint64(v))
}

// Of returns a native integer of any width or signedness as an Int.
func Of[T Integer](v T) Int {
	if v < 0 {
		return New(int64(v))
	}

	return fromUint64(false, uint64(v))
}

func fromUint64(neg bool, u uint64) Int {
	var digits []uint8
	for u != 0 {
		digits = append(digits, uint8(u%10))
		u /= 10
	}

	return normalize(Int{neg: neg, digits: digits})
}

// Parse reads a decimal integer. The input is an optional leading '-'
// followed by zero or more digits; leading zeros are allowed and an empty
// digit sequence is zero.
func Parse(s string) (Int, error) {
	text := s

	var neg bool
	if strings.HasPrefix(text, "-") {
		neg = true
		text = text[1:]
	}

	digits := make([]uint8, len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c < '0' || c > '9' {
			return Int{}, Error.New("%w: %q", ErrSyntax, s)
		}

		digits[len(text)-1-i] = c - '0'
	}

	return normalize(Int{neg: neg, digits: digits}), nil
}

// normalize drops most significant zero digits and clears the sign of zero.
func normalize(x Int) Int {
	x.digits = trim(x.digits)
	if len(x.digits) == 0 {
		x.digits = nil
		x.neg = false
	}

	return x
}

// trim returns ds without its most significant zero digits.
func trim(ds []uint8) []uint8 {
	n := len(ds)
	for n > 0 && ds[n-1] == 0 {
		n--
	}

	return ds[:n]
}

// Clone returns a copy of x that shares no memory with it.
func (x Int) Clone() Int {
	if len(x.digits) == 0 {
		return Int{}
	}

	digits := make([]uint8, len(x.digits))
	copy(digits, x.digits)

	return Int{neg: x.neg, digits: digits}
}

// String returns the canonical decimal form of x.
func (x Int) String() string {
	if len(x.digits) == 0 {
		return "0"
	}

	sb := &strings.Builder{}
	sb.Grow(len(x.digits) + 1)

	if x.neg {
		sb.WriteByte('-')
	}

	for i := len(x.digits) - 1; i >= 0; i-- {
		sb.WriteByte('0' + x.digits[i])
	}

	return sb.String()
}

// Magnitude returns the number of digits in x. Zero has magnitude 0.
func (x Int) Magnitude() int {
	return len(x.digits)
}

// Digits returns the digits of |x|, most significant first.
func (x Int) Digits() []uint8 {
	out := make([]uint8, len(x.digits))
	for i, d := range x.digits {
		out[len(x.digits)-1-i] = d
	}

	return out
}

// IsNegative reports whether x < 0.
func (x Int) IsNegative() bool {
	return x.neg
}

// IsZero reports whether x == 0.
func (x Int) IsZero() bool {
	return len(x.digits) == 0
}

// Sign returns -1, 0 or +1.
func (x Int) Sign() int {
	switch {
	case len(x.digits) == 0:
		return 0
	case x.neg:
		return -1
	}

	return 1
}

// Int64 returns x as an int64, or ErrOverflow if it does not fit.
func (x Int) Int64() (int64, error) {
	var mag uint64
	for i := len(x.digits) - 1; i >= 0; i-- {
		d := uint64(x.digits[i])
		if mag > (math.MaxUint64-d)/10 {
			return 0, Error.New("%w: %s does not fit in int64", ErrOverflow, x)
		}

		mag = mag*10 + d
	}

	if x.neg && mag == 1<<63 {
		return math.MinInt64, nil
	}

	v, err := safecast.Conv[int64](mag)
	if err != nil {
		return 0, Error.New("%w: %s does not fit in int64", ErrOverflow, x)
	}

	if x.neg {
		return -v, nil
	}

	return v, nil
}
