package pure_utils

// Map applies f to every element of src, keeping the order. A nil src gives an empty, non-nil slice
// so that JSON responses carry [] rather than null.
func Map[T, U any](src []T, f func(T) U) []U {
	out := make([]U, len(src))
	for i, item := range src {
		out[i] = f(item)
	}
	return out
}
