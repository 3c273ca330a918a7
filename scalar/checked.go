package scalar

// isFloat reports whether N is a floating-point type.
func isFloat[N Number]() bool {
	return N(1)/2 != 0
}

// CheckedAdd returns a+b and true, or zero and false if the sum is not
// representable in N.
func CheckedAdd[N Number](a, b N) (N, bool) {
	if b > 0 && a > MaxValue[N]()-b {
		return 0, false
	}
	if b < 0 && a < MinValue[N]()-b {
		return 0, false
	}
	return a + b, true
}

// CheckedMul returns a*b and true, or zero and false if the product is
// not representable in N.
func CheckedMul[N Number](a, b N) (N, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	p := a * b
	if isFloat[N]() {
		if p > MaxValue[N]() || p < MinValue[N]() {
			return 0, false
		}
		return p, true
	}
	// Division wraps for MinValue / -1, so the quotient check below
	// cannot catch that pair.
	if (a == MinValue[N]() && b+1 == 0) || (b == MinValue[N]() && a+1 == 0) {
		return 0, false
	}
	if p/b != a {
		return 0, false
	}
	return p, true
}
