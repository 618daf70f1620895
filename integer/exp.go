package integer

// Exp returns x**n using exponentiation by squaring. Zero to the power of
// zero is one. Negative exponents return ErrInvalidExponent.
//
// Only O(log n) multiplications are performed, but the result has roughly
// n times as many digits as x; memory and time grow with the size of the
// result.
func (x Int) Exp(n Int) (Int, error) {
	if n.neg {
		return Int{}, Error.Wrap(ErrInvalidExponent)
	}

	if n.IsZero() {
		return one.Clone(), nil
	}

	half, err := n.Div(two)
	if err != nil {
		return Int{}, err
	}

	r, err := x.Mult(x).Exp(half)
	if err != nil {
		return Int{}, err
	}

	if n.digits[0]%2 == 1 {
		r = r.Mult(x)
	}

	return r, nil
}
