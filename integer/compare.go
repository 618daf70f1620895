package integer

import "bytes"

// Equals reports whether x and y have the same sign and digits.
func (x Int) Equals(y Int) bool {
	return x.neg == y.neg && bytes.Equal(x.digits, y.digits)
}

// Gt reports whether x > y.
func (x Int) Gt(y Int) bool {
	if x.neg != y.neg {
		return !x.neg
	}

	// With both operands negative the larger magnitude is the smaller value.
	if x.neg {
		return cmpDigits(x.digits, y.digits) < 0
	}

	return cmpDigits(x.digits, y.digits) > 0
}

// Gte reports whether x >= y.
func (x Int) Gte(y Int) bool {
	return x.Equals(y) || x.Gt(y)
}

// Lt reports whether x < y.
func (x Int) Lt(y Int) bool {
	return !x.Gte(y)
}

// Lte reports whether x <= y.
func (x Int) Lte(y Int) bool {
	return !x.Gt(y)
}

// Cmp returns -1 if x < y, 0 if x == y and +1 if x > y.
func (x Int) Cmp(y Int) int {
	switch {
	case x.Equals(y):
		return 0
	case x.Gt(y):
		return 1
	}

	return -1
}

// cmpDigits compares two trimmed magnitudes: first by digit count, then
// digit by digit from the most significant end.
func cmpDigits(a, b []uint8) int {
	switch {
	case len(a) > len(b):
		return 1
	case len(a) < len(b):
		return -1
	}

	for i := len(a) - 1; i >= 0; i-- {
		switch {
		case a[i] > b[i]:
			return 1
		case a[i] < b[i]:
			return -1
		}
	}

	return 0
}
