package integer

import (
	"encoding/json"
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func TestMarshalUnmarshal(t *testing.T) {
	type TC struct {
		name string
		x    Int
		data []byte
	}

	tcs := []TC{
		{
			name: "+0",
			x:    Int{},
			data: []byte{
				0b0000_1100,
			},
		},
		{
			name: "+1",
			x:    New(1),
			data: []byte{
				0b0001_1100,
			},
		},
		{
			name: "-1",
			x:    New(-1),
			data: []byte{
				0b0001_1101,
			},
		},
		{
			name: "-45",
			x:    New(-45),
			data: []byte{
				0b0000_0100,
				0b0101_1101,
			},
		},
		{
			name: "+123",
			x:    New(123),
			data: []byte{
				0b0001_0010,
				0b0011_1100,
			},
		},
		{
			name: "+9876543210",
			x:    New(9876543210),
			data: []byte{
				0b0000_1001,
				0b1000_0111,
				0b0110_0101,
				0b0100_0011,
				0b0010_0001,
				0b0000_1100,
			},
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			t.Run("marshal", func(t *testing.T) {
				data, err := tc.x.MarshalBinary()
				require.NoError(t, err)
				require.Equal(t, tc.data, data)
			})

			t.Run("unmarshal", func(t *testing.T) {
				x := Int{}
				err := x.UnmarshalBinary(tc.data)
				require.NoError(t, err)
				require.Equal(t, tc.x, x)

				// These checks ensure that our test case name matches the value.
				i := new(big.Int)
				err = i.UnmarshalText([]byte(tc.name))
				require.NoError(t, err)
				require.Equal(t, i.String(), x.String())
			})
		})
	}
}

func TestUnmarshalBinary(t *testing.T) {
	type TC struct {
		name string
		data []byte
		out  string
		err  bool
	}

	tcs := []TC{
		{name: "unsigned", data: []byte{0b0111_1111}, out: "7"},
		{name: "negative zero", data: []byte{0b0000_1101}, out: "0"},
		{name: "leading zeros", data: []byte{0b0000_0000, 0b0000_0101, 0b0001_1101}, out: "-51"},
		{name: "empty", data: []byte{}, err: true},
		{name: "nil", data: nil, err: true},
		{name: "bad sign", data: []byte{0b0001_1010}, err: true},
		{name: "digit as sign", data: []byte{0b0001_0010}, err: true},
		{name: "bad digit", data: []byte{0b1010_0001, 0b0001_1100}, err: true},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			x := Int{}
			err := x.UnmarshalBinary(tc.data)
			if tc.err {
				require.ErrorIs(t, err, ErrInvalidEncoding)
				require.True(t, Error.Has(err))

				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.out, x.String())
		})
	}
}

func TestText(t *testing.T) {
	for _, s := range []string{"0", "-1", "42", "-123456789012345678901234567890"} {
		t.Run(s, func(t *testing.T) {
			text, err := MustParse(s).MarshalText()
			require.NoError(t, err)
			require.Equal(t, s, string(text))

			x := Int{}
			err = x.UnmarshalText(text)
			require.NoError(t, err)
			require.Equal(t, MustParse(s), x)
		})
	}

	x := New(3)
	err := x.UnmarshalText([]byte("3.0"))
	require.ErrorIs(t, err, ErrSyntax)
	require.True(t, Error.Has(err))
	require.Equal(t, `integer: invalid syntax: "3.0"`, err.Error())
	require.Equal(t, New(3), x)
}

func TestJSON(t *testing.T) {
	type doc struct {
		A Int  `json:"a"`
		B *Int `json:"b"`
	}

	b := MustParse("-98765432109876543210")
	data, err := json.Marshal(doc{A: New(12), B: &b})
	require.NoError(t, err)
	require.JSONEq(t, `{"a":"12","b":"-98765432109876543210"}`, string(data))

	var out doc
	err = json.Unmarshal(data, &out)
	require.NoError(t, err)
	require.Equal(t, New(12), out.A)
	require.Equal(t, b, *out.B)

	t.Run("bare", func(t *testing.T) {
		var out doc
		err := json.Unmarshal([]byte(`{"a":-12,"b":123456789012345678901234567890}`), &out)
		require.NoError(t, err)
		require.Equal(t, "-12", out.A.String())
		require.Equal(t, "123456789012345678901234567890", out.B.String())
	})

	t.Run("null", func(t *testing.T) {
		x := New(7)
		err := x.UnmarshalJSON([]byte("null"))
		require.NoError(t, err)
		require.Equal(t, New(7), x)
	})

	t.Run("invalid", func(t *testing.T) {
		var out doc
		err := json.Unmarshal([]byte(`{"a":"1e3"}`), &out)
		require.Error(t, err)
	})
}

func TestFormat(t *testing.T) {
	type TC struct {
		format string
		x      Int
		out    string
	}

	tcs := []TC{
		{format: "%v", x: New(-12), out: "-12"},
		{format: "%s", x: New(0), out: "0"},
		{format: "%d", x: New(5), out: "5"},
		{format: "%+d", x: New(5), out: "+5"},
		{format: "%+d", x: New(-5), out: "-5"},
		{format: "%+d", x: New(0), out: "+0"},
		{format: "%6d", x: New(-12), out: "   -12"},
		{format: "%-6d|", x: New(-12), out: "-12   |"},
		{format: "%2d", x: New(12345), out: "12345"},
		{format: "%x", x: New(10), out: "%!x(integer.Int=10)"},
	}

	for _, tc := range tcs {
		t.Run(tc.format, func(t *testing.T) {
			require.Equal(t, tc.out, fmt.Sprintf(tc.format, tc.x))
		})
	}
}

func TestMsgpack(t *testing.T) {
	for _, s := range []string{"0", "-1", "12341077", "-700805340046809", "121932631112635269121932631112635269"} {
		t.Run(s, func(t *testing.T) {
			data, err := msgpack.Marshal(MustParse(s))
			require.NoError(t, err)

			var x Int
			err = msgpack.Unmarshal(data, &x)
			require.NoError(t, err)
			require.Equal(t, MustParse(s), x)
		})
	}

	t.Run("slice", func(t *testing.T) {
		in := []Int{New(1), New(-2), MustParse("300000000000000000000")}

		data, err := msgpack.Marshal(in)
		require.NoError(t, err)

		var out []Int
		err = msgpack.Unmarshal(data, &out)
		require.NoError(t, err)
		require.Equal(t, in, out)
	})

	t.Run("invalid", func(t *testing.T) {
		data, err := msgpack.Marshal([]byte{0b1111_0000})
		require.NoError(t, err)

		var x Int
		err = msgpack.Unmarshal(data, &x)
		require.ErrorIs(t, err, ErrInvalidEncoding)
		require.True(t, Error.Has(err))
	})
}
