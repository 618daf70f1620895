package integer

import "fmt"

// MustParse is like Parse but panics if s is not a valid integer.
func MustParse(s string) Int {
	x, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}

	return x
}

// MustDiv is like Div but panics if y is zero.
func (x Int) MustDiv(y Int) Int {
	q, err := x.Div(y)
	if err != nil {
		panic(fmt.Sprintf("MustDiv(%v) failed: %v", y, err))
	}

	return q
}

// MustRem is like Rem but panics if y is zero.
func (x Int) MustRem(y Int) Int {
	r, err := x.Rem(y)
	if err != nil {
		panic(fmt.Sprintf("MustRem(%v) failed: %v", y, err))
	}

	return r
}

// MustMod is like Mod but panics if y is zero.
func (x Int) MustMod(y Int) Int {
	m, err := x.Mod(y)
	if err != nil {
		panic(fmt.Sprintf("MustMod(%v) failed: %v", y, err))
	}

	return m
}

// MustExp is like Exp but panics if n is negative.
func (x Int) MustExp(n Int) Int {
	e, err := x.Exp(n)
	if err != nil {
		panic(fmt.Sprintf("MustExp(%v) failed: %v", n, err))
	}

	return e
}
