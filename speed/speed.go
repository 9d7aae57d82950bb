package speed

import (
	"fmt"
	"math"

	"github.com/zeebo/errs"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("speed")

// Layout of a code.
const (
	ExponentBits = 3
	MantissaBits = 7
	Bits         = ExponentBits + MantissaBits

	Mask         = 1<<Bits - 1
	mantissaMask = 1<<MantissaBits - 1
	exponentMask = 1<<ExponentBits - 1
)

// Range of the encoding.
const (
	MaxCode  Code    = Mask
	MaxSpeed float64 = 255
	MinStep  float64 = 1.0 / 64

	// linearLimit is the largest speed encoded directly as speed * 64.
	linearLimit = 2.0
	linearShift = -6

	// hidden is the implicit leading mantissa bit for exponents above 0.
	hidden = 1 << MantissaBits
)

// Code is a packed 10 bit speed.
type Code uint16

// Encode packs speed into a code.
func Encode(speed float64) Code {
	if speed <= 0 || math.IsNaN(speed) {
		return 0
	}
	if speed <= linearLimit {
		return Code(math.Round(scalbn(speed, -linearShift)))
	}

	if speed >= MaxSpeed {
		speed = MaxSpeed
	}

	exponent := ilogb(speed)
	mantissa := math.Round(scalbn(speed, MantissaBits-exponent) - hidden)

	// A mantissa that rounds up to 128 carries into the next exponent, which
	// is the correct code for the next octave.
	return Code(exponent<<MantissaBits) + Code(mantissa)
}

// Decode unpacks the speed from the low 10 bits of c.
func Decode(c Code) float64 {
	if c == 0 {
		return 0
	}

	mantissa := c.Mantissa()
	exponent := c.Exponent()
	if exponent == 0 {
		return scalbn(float64(mantissa), linearShift)
	}

	return scalbn(float64(mantissa)+hidden, int(exponent)-MantissaBits)
}

// Step returns the quantization step of the bucket speed falls in. Speeds
// outside the encodable range use the step of the bucket they clamp to.
func Step(speed float64) float64 {
	if math.IsNaN(speed) || speed < 2*linearLimit {
		return MinStep
	}
	if speed >= MaxSpeed {
		speed = MaxSpeed
	}

	return scalbn(1, ilogb(speed)-MantissaBits)
}

// Exponent returns bits 9 to 7.
func (c Code) Exponent() uint8 {
	return uint8((c >> MantissaBits) & exponentMask)
}

// Mantissa returns bits 6 to 0.
func (c Code) Mantissa() uint8 {
	return uint8(c & mantissaMask)
}

// Valid reports whether c has no bits set above bit 9.
func (c Code) Valid() bool {
	return c&^Mask == 0
}

// Float64 is the same as Decode(c).
func (c Code) Float64() float64 {
	return Decode(c)
}

// Step returns the quantization step of the bucket c lies in.
func (c Code) Step() float64 {
	e := int(c.Exponent())
	if e <= 1 {
		return MinStep
	}

	return scalbn(1, e-MantissaBits)
}

// String returns the exponent, mantissa and decoded speed of c.
func (c Code) String() string {
	return fmt.Sprintf("e%dm%d(%g)", c.Exponent(), c.Mantissa(), Decode(c))
}

// ilogb returns floor(log2(x)) for a positive finite x. It reads the binary
// exponent rather than dividing logarithms, so powers of two are exact.
func ilogb(x float64) int {
	// Frexp normalizes the fraction into [0.5, 1).
	_, exp := math.Frexp(x)

	return exp - 1
}

// scalbn returns value * 2^exp.
func scalbn(value float64, exp int) float64 {
	return math.Ldexp(value, exp)
}
