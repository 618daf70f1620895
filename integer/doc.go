// Package integer provides signed integers of unbounded magnitude.
//
// An Int stores its magnitude as base 10 digits together with a sign. All
// arithmetic is carried out digit by digit with schoolbook algorithms:
// carry addition, borrow subtraction, long multiplication by partial
// products, long division by repeated subtraction and exponentiation by
// squaring. Results are always exact.
//
// Int is a value type. Operations never modify their operands; each returns
// a new Int. The zero value is the number zero.
//
//	a := integer.MustParse("90071992547409919")
//	b := integer.New(12341234)
//	q, r, err := a.QuoRem(b)
//
// Native integers are converted with New or Of:
//
//	integer.Of(uint64(18446744073709551615))
//
// Representation
//
// The canonical form has no leading zeros and no negative zero. Digits are
// held least significant first internally, and are exposed most significant
// first by Digits.
//
// Remainders
//
// Rem truncates: its result has the sign of the dividend, like Go's %
// operator. Mod floors: a non-zero result has the sign of the divisor.
//
// Encoding
//
// Binary marshaling uses packed decimal: two digits per byte, most
// significant first, terminated by a sign nibble.
//
//	| 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//	|---------------|---------------|
//	| digit         | digit         |
//	| ...           | ...           |
//	| digit         | sign          | 0xC for +, 0xD for -.
//	|---------------|---------------|
//
// A leading zero nibble pads the first byte when the digit count is even.
// On input the unsigned sign nibble 0xF is accepted as positive.
package integer
