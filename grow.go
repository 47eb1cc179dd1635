package meval

// grow appends v to s, growing the capacity by half when s is full. It reports
// false without appending if s already holds max elements.
func grow[T any](s []T, v T, max int) ([]T, bool) {
	if len(s) >= max {
		return s, false
	}
	if len(s) == cap(s) {
		n := cap(s) + cap(s)/2
		if n < 4 {
			n = 4
		}
		if n > max {
			n = max
		}
		t := make([]T, len(s), n)
		copy(t, s)
		s = t
	}
	return append(s, v), true
}
