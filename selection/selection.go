// Package selection implements the set algebra behind multi-choice controls.
//
// A selection is an ordered []string treated as a set. Every function is pure:
// inputs are never modified and results are freshly allocated, so a caller may
// hold the previous value while committing the new one.
package selection

// Toggle removes o from s when present, otherwise appends it
// Members outside any option universe are carried through unchanged
func Toggle(s []string, o string) []string {
	if Contains(s, o) {
		out := make([]string, 0, len(s))
		for _, v := range s {
			if v != o {
				out = append(out, v)
			}
		}
		return out
	}

	out := make([]string, 0, len(s)+1)
	out = append(out, s...)
	return append(out, o)
}

// SelectAll returns the empty set when s already covers exactly the universe,
// otherwise a copy of the universe in its original order
func SelectAll(s, universe []string) []string {
	if AllSelected(s, universe) {
		return []string{}
	}
	out := make([]string, len(universe))
	copy(out, universe)
	return out
}

// AllSelected reports whether s equals universe as a set
// Both |s ∩ u| and |s| must match |u|, so a foreign member in s never counts as full coverage
func AllSelected(s, universe []string) bool {
	u := toSet(universe)
	members := toSet(s)
	if len(members) != len(u) {
		return false
	}
	inter := 0
	for v := range members {
		if _, ok := u[v]; ok {
			inter++
		}
	}
	return inter == len(u)
}

// Contains reports membership of o in s
func Contains(s []string, o string) bool {
	for _, v := range s {
		if v == o {
			return true
		}
	}
	return false
}

// Equal compares two selections as sets, ignoring order and repeats
func Equal(a, b []string) bool {
	sa, sb := toSet(a), toSet(b)
	if len(sa) != len(sb) {
		return false
	}
	for v := range sa {
		if _, ok := sb[v]; !ok {
			return false
		}
	}
	return true
}

// Restrict returns the members of s present in universe, preserving s order
func Restrict(s, universe []string) []string {
	u := toSet(universe)
	out := make([]string, 0, len(s))
	for _, v := range s {
		if _, ok := u[v]; ok {
			out = append(out, v)
		}
	}
	return out
}

// Count returns the number of distinct members
func Count(s []string) int {
	return len(toSet(s))
}

func toSet(s []string) map[string]struct{} {
	m := make(map[string]struct{}, len(s))
	for _, v := range s {
		m[v] = struct{}{}
	}
	return m
}
