// Package calc evaluates reverse Polish notation over integer.Int values.
//
// A program is a line of whitespace separated tokens. Numbers are pushed on
// the operand stack; operators pop their operands and push the result.
//
//	| Token | Pops | Pushes                      |
//	|-------|------|-----------------------------|
//	| +     | a b  | a + b                       |
//	| -     | a b  | a - b                       |
//	| *     | a b  | a * b                       |
//	| /     | a b  | a / b truncated             |
//	| %     | a b  | a rem b (sign of a)         |
//	| mod   | a b  | a mod b (sign of b)         |
//	| ^     | a b  | a ** b                      |
//	| cmp   | a b  | -1, 0 or 1                  |
//	| neg   | a    | -a                          |
//	| abs   | a    | |a|                         |
//	| dup   | a    | a a                         |
//	| drop  | a    |                             |
//	| swap  | a b  | b a                         |
//	|-------|------|-----------------------------|
//
// A lone "-" is the subtraction operator; "-5" is a number.
package calc
