// Package decimal renders fixed point base 10 numbers.
//
// The equation for a decimal number is:
//
//	number = value * 10 ^ -scale
//
// Where value is an unscaled unsigned integer and scale is the number of
// fractional digits. For example, with a scale of 9 (nano units):
//
//	| Value         | Scale | Rendered |
//	|---------------|-------|----------|
//	| 1             | 9     | 0.000000001 |
//	| 500000000     | 9     | 0.5      |
//	| 2000000000000 | 9     | 2000     |
//	| 0             | 9     | 0        |
//	|---------------|-------|----------|
//
// Trailing fractional zeros are dropped and a whole number has no decimal
// point, which keeps the text short enough for small displays.
package decimal
