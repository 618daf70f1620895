package calc

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/calebcase/bigint/integer"
)

// Stack is the operand stack. The last element is the top.
type Stack []integer.Int

func (s *Stack) Push(x integer.Int) {
	*s = append(*s, x)
}

// Top returns the top of the stack without removing it.
func (s *Stack) Top() (x integer.Int, ok bool) {
	if len(*s) == 0 {
		return x, false
	}

	return (*s)[len(*s)-1], true
}

func (s *Stack) Pop() (x integer.Int, err error) {
	top, ok := s.Top()
	if !ok {
		return x, ErrUnderflow
	}

	*s = (*s)[:len(*s)-1]

	return top, nil
}

// PopN removes the top n values and returns them in push order.
func (s *Stack) PopN(n int) (xs []integer.Int, err error) {
	if len(*s) < n {
		return nil, ErrUnderflow
	}

	xs = make([]integer.Int, n)
	copy(xs, (*s)[len(*s)-n:])

	*s = (*s)[:len(*s)-n]

	return xs, nil
}

func (s *Stack) Len() int {
	return len(*s)
}

// Save writes the stack to w in msgpack form.
func Save(w io.Writer, s Stack) (err error) {
	defer Error.WrapP(&err)

	return msgpack.NewEncoder(w).Encode([]integer.Int(s))
}

// Load reads a stack written by Save.
func Load(r io.Reader) (s Stack, err error) {
	defer Error.WrapP(&err)

	var xs []integer.Int

	err = msgpack.NewDecoder(r).Decode(&xs)
	if err != nil {
		return nil, err
	}

	return Stack(xs), nil
}
