package speed

import (
	"encoding/binary"
	"strconv"
)

// MarshalBinary implements encoding.BinaryMarshaler. The code is written as 2
// bytes big-endian. Codes with bits set above bit 9 are rejected.
func (c Code) MarshalBinary() (data []byte, err error) {
	if !c.Valid() {
		return nil, Error.New("invalid code: %016b", uint16(c))
	}

	data = make([]byte, 2)
	binary.BigEndian.PutUint16(data, uint16(c))

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (c *Code) UnmarshalBinary(data []byte) (err error) {
	if len(data) != 2 {
		return Error.New("invalid length: %d", len(data))
	}

	v := Code(binary.BigEndian.Uint16(data))
	if !v.Valid() {
		return Error.New("invalid code: %016b", uint16(v))
	}

	*c = v

	return nil
}

// MarshalText implements encoding.TextMarshaler using the decoded speed.
// Codes with bits set above bit 9 are rejected.
func (c Code) MarshalText() (text []byte, err error) {
	if !c.Valid() {
		return nil, Error.New("invalid code: %016b", uint16(c))
	}

	return strconv.AppendFloat(nil, Decode(c), 'g', -1, 64), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The text is parsed as a
// speed and encoded, so it is quantized like any other speed.
func (c *Code) UnmarshalText(text []byte) (err error) {
	defer Error.WrapP(&err)

	v, err := strconv.ParseFloat(string(text), 64)
	if err != nil {
		return err
	}

	*c = Encode(v)

	return nil
}
