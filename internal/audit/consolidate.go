package audit

import "slices"

// Consolidate flattens lists into one set of distinct strings. The result is
// sorted so reports are stable between runs.
func Consolidate(lists [][]string) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, list := range lists {
		for _, s := range list {
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	slices.Sort(out)
	return out
}
