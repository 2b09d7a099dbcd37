package rat64

// GCD returns the greatest common divisor of |m| and |n|.
// The GCD is the largest integer that divides both m and n;
// GCD(0, n) == |n| and GCD(m, 0) == |m|.
func GCD(m, n int64) int64 {
	if m < 0 {
		m = -m
	}
	if n < 0 {
		n = -n
	}
	// Euclid's algorithm; a handful of ns/op over the full int64 range,
	// which is fast enough for the reductions this package performs.
	for n != 0 {
		m, n = n, m%n
	}
	return m
}
