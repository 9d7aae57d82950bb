package speed

import "golang.org/x/exp/constraints"

// EncodeFloat is Encode for any float type.
func EncodeFloat[T constraints.Float](speed T) Code {
	return Encode(float64(speed))
}

// DecodeFloat is Decode for any float type. Every code is exactly
// representable as a float32.
func DecodeFloat[T constraints.Float](c Code) T {
	return T(Decode(c))
}
