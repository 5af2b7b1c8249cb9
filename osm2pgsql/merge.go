package osm2pgsql

// MergeRefs joins node reference sequences that share an endpoint into
// continuous sequences, reversing members where needed. Empty sequences are
// dropped. The input and its members are left untouched.
func MergeRefs(in [][]int64) [][]int64 {
	out := make([][]int64, 0, len(in))
	for _, refs := range in {
		if len(refs) == 0 {
			continue
		}
		out = append(out, append([]int64(nil), refs...))
	}

	// Keep joining until no two sequences touch anymore.
	merged := true
	for merged {
		merged = false
		for i := 0; i < len(out) && !merged; i++ {
			for j := i + 1; j < len(out); j++ {
				joined, ok := joinRefs(out[i], out[j])
				if !ok {
					continue
				}
				out[i] = joined
				out = append(out[:j], out[j+1:]...)
				merged = true
				break
			}
		}
	}
	return out
}

// joinRefs merges b into a when they share an endpoint, reversing b when
// the shared endpoint requires it.
func joinRefs(a, b []int64) ([]int64, bool) {
	switch {
	case a[len(a)-1] == b[0]:
		return append(a, b[1:]...), true
	case b[len(b)-1] == a[0]:
		return append(b, a[1:]...), true
	case a[len(a)-1] == b[len(b)-1]:
		reverseRefs(b)
		return append(a, b[1:]...), true
	case a[0] == b[0]:
		reverseRefs(b)
		return append(b, a[1:]...), true
	}
	return nil, false
}

func reverseRefs(s []int64) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
