package domain

func addInt64(a, b int64) (int64, bool) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, false
	}

	return s, true
}

func subInt64(a, b int64) (int64, bool) {
	d := a - b
	if (b > 0 && d > a) || (b < 0 && d < a) {
		return 0, false
	}

	return d, true
}

func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}

	c := a * b
	// The sign check catches MinInt64 * -1, which c/b alone misses.
	if (c < 0) != ((a < 0) != (b < 0)) || c/b != a {
		return 0, false
	}

	return c, true
}
