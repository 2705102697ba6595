package table

// Search locates the entry whose range contains r and returns its value.
// The entries must be sorted ascending by range start and pairwise
// disjoint. The second result is false when no range contains r; that is
// the only "failure" the search has, an out-of-domain r simply misses.
//
// The boolean and valued lookup forms both go through this one function
// so that the bound-update logic exists exactly once.
func Search[V any](entries []Entry[V], r rune) (V, bool) {
	var zero V
	if len(entries) == 0 {
		return zero, false
	}
	lo := 0
	hi := len(entries) - 1
	for lo < hi {
		mid := lo + (hi-lo)/2
		iv := entries[mid].Range
		switch {
		case iv.Hi < r:
			lo = mid + 1
		case iv.Lo > r:
			hi = mid - 1
		default:
			return entries[mid].Value, true
		}
	}
	// hi can cross below lo when r lies left of the remaining candidate,
	// in which case no single candidate is left to test.
	if lo == hi && entries[lo].Range.Contains(r) {
		return entries[lo].Value, true
	}
	return zero, false
}

// Contains is the membership form of Search.
func Contains[V any](entries []Entry[V], r rune) bool {
	_, ok := Search(entries, r)
	return ok
}
