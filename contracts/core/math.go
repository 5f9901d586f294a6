package core

import (
	"math/bits"

	"treasury_suite/sdk"
)

// Portion math widens through 128 bits so total * portion never overflows
// before the divide by the 1e18 scale.

// MulDiv computes a * mul / div with a 128-bit intermediate.
func MulDiv(a Amount, mul uint64, div uint64) Amount {
	if div == 0 {
		sdk.Abort("division by zero")
	}
	hi, lo := bits.Mul64(uint64(a), mul)
	if hi >= div {
		sdk.Abort("mul/div overflow")
	}
	q, _ := bits.Div64(hi, lo, div)
	return Amount(q)
}

// Portion resolves a Portion-kind amount against the managed total.
func Portion(total Amount, portion uint64) Amount {
	return MulDiv(total, portion, OneHundredPercent)
}

// CheckedSub aborts on underflow. Used on holder-facing debits where silent
// clamping would hide an accounting hole.
func CheckedSub(a, b Amount, msg string) Amount {
	if b > a {
		sdk.Abort(msg)
	}
	return a - b
}

// ClampSub floors at zero. Used where the engine deliberately settles for
// whatever is available instead of erroring.
func ClampSub(a, b Amount) Amount {
	if b > a {
		return 0
	}
	return a - b
}

// MinAmount returns the smaller of two amounts.
func MinAmount(a, b Amount) Amount {
	if a < b {
		return a
	}
	return b
}
