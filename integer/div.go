package integer

import "github.com/calebcase/bigint/internal/logic"

// divRem divides x by d using long division by repeated subtraction.
//
// For each digit position p, from the highest down to 0, the remainder so
// far shifted down by p digits is reduced by |d| until it is smaller than
// |d|; the number of subtractions is the quotient digit at p. A quotient
// digit never exceeds 9, so the whole division costs O(digits * 9)
// magnitude subtractions rather than digit estimation.
//
// The remainder is recomputed as x - q*d and so carries the sign of x.
func (x Int) divRem(d Int) (q, r Int, err error) {
	if d.Magnitude() == 0 {
		return Int{}, Int{}, Error.Wrap(ErrDivisionByZero)
	}

	den := d.digits
	top := len(x.digits) - len(den)

	quo := make([]uint8, max(top+1, 0))
	rem := x.digits

	for p := top; p >= 0; p-- {
		if len(rem) <= p {
			continue
		}

		work := rem[p:]

		var count uint8
		for cmpDigits(work, den) >= 0 {
			work = trim(subDigits(work, den))
			count++
		}

		quo[p] = count

		// Bring the reduced high part back above the untouched low
		// digits. The full slice expression forces a fresh array so x is
		// never written to.
		rem = trim(append(rem[:p:p], work...))
	}

	q = normalize(Int{
		neg:    logic.Xor(x.neg, d.neg),
		digits: quo,
	})
	r = x.Sub(q.Mult(d))

	return q, r, nil
}

// QuoRem returns the truncated quotient x/y and the remainder x - y*(x/y).
// The remainder has the sign of x.
func (x Int) QuoRem(y Int) (q, r Int, err error) {
	return x.divRem(y)
}

// Div returns the quotient x/y truncated toward zero.
func (x Int) Div(y Int) (Int, error) {
	q, _, err := x.divRem(y)
	if err != nil {
		return Int{}, err
	}

	return q, nil
}

// Rem returns the truncated remainder of x/y. A non-zero result has the
// sign of x.
func (x Int) Rem(y Int) (Int, error) {
	_, r, err := x.divRem(y)
	if err != nil {
		return Int{}, err
	}

	return r, nil
}

// Mod returns the floored modulus of x/y. A non-zero result has the sign
// of y.
func (x Int) Mod(y Int) (Int, error) {
	r, err := x.Rem(y)
	if err != nil {
		return Int{}, err
	}

	if !r.IsZero() && r.neg != y.neg {
		r = r.Add(y)
	}

	return r, nil
}
