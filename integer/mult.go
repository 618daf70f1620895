package integer

import "github.com/calebcase/bigint/internal/logic"

// partial is a partial product: one digit of a multiplicand times every
// digit of the other, shifted into position. Entries range up to 81 and
// are only reduced to [0, 9] when summed by addDigits.
type partial []uint16

// Mult returns x * y.
func (x Int) Mult(y Int) Int {
	var acc []uint8

	for i, d := range x.digits {
		if d == 0 {
			continue
		}

		p := make(partial, i, i+len(y.digits))
		for _, e := range y.digits {
			p = append(p, uint16(d)*uint16(e))
		}

		acc = addDigits(acc, p)
	}

	return normalize(Int{
		neg:    logic.Xor(x.neg, y.neg),
		digits: acc,
	})
}
