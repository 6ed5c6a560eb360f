// Package permute enumerates orderings of small slices.
package permute

// Each invokes visit once per ordering of xs, using Heap's algorithm.
// The slice passed to visit is a shared buffer that is reshuffled between
// invocations: callers that retain an ordering must copy it first.
func Each[T any](xs []T, visit func([]T)) {
	if len(xs) == 0 {
		return
	}
	buf := make([]T, len(xs))
	copy(buf, xs)

	var generate func(k int)
	generate = func(k int) {
		if k == 1 {
			visit(buf)
			return
		}
		for i := 0; i < k-1; i++ {
			generate(k - 1)
			if k%2 == 0 {
				buf[i], buf[k-1] = buf[k-1], buf[i]
			} else {
				buf[0], buf[k-1] = buf[k-1], buf[0]
			}
		}
		generate(k - 1)
	}
	generate(len(buf))
}
