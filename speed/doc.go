// Package speed provides a 10 bit floating point encoding for speed values.
//
// A speed is a real number nominally between 0 and 255. It is packed into 10
// bits as a tiny float with a 3 bit exponent and a 7 bit mantissa:
//
//  | 9 | 8 | 7 | 6 | 5 | 4 | 3 | 2 | 1 | 0 |
//  |-----------|---------------------------|
//  | e . e . e | m . m . m . m . m . m . m |
//  |-----------|---------------------------|
//
// The encoding can represent 1024 values from 0 to 255. The smallest non-zero
// value is 1/64. Precision is not uniform, each exponent covers one octave
// with 128 mantissa steps:
//
//  | Exponent | Range   | Step |
//  |----------|---------|------|
//  | 0        | 0-2     | 1/64 |
//  | 1        | 2-4     | 1/64 |
//  | 2        | 4-8     | 1/32 |
//  | 3        | 8-16    | 1/16 |
//  | 4        | 16-32   | 1/8  |
//  | 5        | 32-64   | 1/4  |
//  | 6        | 64-128  | 1/2  |
//  | 7        | 128-255 | 1    |
//  |----------|---------|------|
//
// Exponent 0 is linear: the code is simply round(speed * 64). This covers
// codes 0 through 128 (2.0 encodes to 128, which is also exponent 1 with a
// zero mantissa).
//
// For larger values the mantissa is rebased so the implicit leading bit is
// dropped:
//
//  speed = (128 + mantissa) * 2^(exponent - 7)
//
// For example:
//
//  100.0 = (128 + 72) * 2^(6 - 7)  =>  0b110_1001000 = 840
//
// Encoding never fails. Values at or below zero encode to 0 and values at or
// above 255 saturate to 1023. Rounding is to nearest with ties away from zero.
//
// Decoding only interprets the low 10 bits of a code. Every code survives a
// decode then encode round trip unchanged.
package speed
