package orbitals

// Factorial returns k! as a Real. Any k <= 1 (negative included) yields 1.
func Factorial(k int) Real {
	if k <= 1 {
		return 1
	}
	f := Real(k)
	for i := k - 1; i >= 2; i-- {
		f *= Real(i)
	}
	return f
}

// Choose is the generalized binomial coefficient C(n, k) for real n:
// prod_{i=1..k} (n+1-i)/i. k <= 0 is the empty product.
func Choose(n Real, k int) Real {
	c := 1.0
	for i := 1; i <= k; i++ {
		c *= (n + 1 - Real(i)) / Real(i)
	}
	return c
}
