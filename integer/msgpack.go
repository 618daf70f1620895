package integer

import "github.com/vmihailenco/msgpack/v5"

var (
	_ msgpack.CustomEncoder = Int{}
	_ msgpack.CustomDecoder = (*Int)(nil)
)

// EncodeMsgpack implements msgpack.CustomEncoder as a bin value holding the
// packed decimal form.
func (x Int) EncodeMsgpack(enc *msgpack.Encoder) error {
	data, err := x.MarshalBinary()
	if err != nil {
		return err
	}

	return Error.Wrap(enc.EncodeBytes(data))
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (x *Int) DecodeMsgpack(dec *msgpack.Decoder) error {
	data, err := dec.DecodeBytes()
	if err != nil {
		return Error.Wrap(err)
	}

	return x.UnmarshalBinary(data)
}
