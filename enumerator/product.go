// Copyright (c) 2024 Neomantra Corp

package enumerator

// Product enumerates the cartesian product of xs with itself length times.
// Unlike a naive nested loop, this works even when xs is infinite: it
// caches the first i+1 elements drawn from xs and, for i=0,1,2,..., emits
// every length-tuple of indices into that cache that sums to i (via
// AllocationsOf), so every tuple drawable from xs is eventually produced.
func Product[T any](xs Gen[T], length int) Gen[[]T] {
	var cache []T
	i := -1
	var current Gen[[]int]
	exhausted := false

	return func() ([]T, bool) {
		for {
			if current != nil {
				if idxs, ok := current(); ok {
					tuple := make([]T, length)
					inRange := true
					for j, idx := range idxs {
						if idx >= len(cache) {
							inRange = false
							break
						}
						tuple[j] = cache[idx]
					}
					if inRange {
						return tuple, true
					}
					continue
				}
			}
			if exhausted {
				// xs is finite: keep raising the index sum, skipping tuples
				// that reach past the cache, until no tuple can fit in it.
				i++
				if i > length*(len(cache)-1) {
					return nil, false
				}
				current = AllocationsOf(i, length)
				continue
			}
			x, ok := xs()
			if !ok {
				exhausted = true
				continue
			}
			cache = append(cache, x)
			i++
			current = AllocationsOf(i, length)
		}
	}
}
