package integer

// digit is an element of a least significant first digit sequence. Reduced
// sequences use uint8 with every entry in [0, 9]; partial products use a
// wider type whose entries may exceed 9.
type digit interface {
	~uint8 | ~uint16
}

// addDigits sums two magnitudes with carry propagation. Entries of either
// input may exceed 9: sum%10 and sum/10 hold for any non-negative sum, so
// the output is always reduced.
func addDigits[A, B digit](a []A, b []B) []uint8 {
	n := max(len(a), len(b))
	out := make([]uint8, 0, n+1)

	var carry uint
	for i := 0; i < n || carry > 0; i++ {
		sum := carry
		if i < len(a) {
			sum += uint(a[i])
		}
		if i < len(b) {
			sum += uint(b[i])
		}

		out = append(out, uint8(sum%10))
		carry = sum / 10
	}

	return out
}

// subDigits returns a - b for magnitudes with a >= b, using borrow
// propagation.
func subDigits(a, b []uint8) []uint8 {
	out := make([]uint8, len(a))

	borrow := 0
	for i := range a {
		diff := int(a[i]) + borrow
		if i < len(b) {
			diff -= int(b[i])
		}

		if diff < 0 {
			diff += 10
			borrow = -1
		} else {
			borrow = 0
		}

		out[i] = uint8(diff)
	}

	return out
}

// Add returns x + y.
func (x Int) Add(y Int) Int {
	if x.neg == y.neg {
		return normalize(Int{
			neg:    x.neg,
			digits: addDigits(x.digits, y.digits),
		})
	}

	larger, smaller := y, x
	if cmpDigits(x.digits, y.digits) > 0 {
		larger, smaller = x, y
	}

	return normalize(Int{
		neg:    larger.neg,
		digits: subDigits(larger.digits, smaller.digits),
	})
}

// Sub returns x - y.
func (x Int) Sub(y Int) Int {
	return x.Add(y.Negate())
}

// Negate returns -x.
func (x Int) Negate() Int {
	n := x.Clone()
	n.neg = !n.neg

	return normalize(n)
}

// Abs returns |x|.
func (x Int) Abs() Int {
	a := x.Clone()
	a.neg = false

	return a
}
