package organize

import "sort"

// StringSet is a set of filenames.
type StringSet map[string]struct{}

// NewStringSet creates a set from the given items.
func NewStringSet(items ...string) StringSet {
	s := make(StringSet, len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}
	return s
}

// Add inserts an item into the set.
func (s StringSet) Add(item string) {
	s[item] = struct{}{}
}

// Contains reports whether item is in the set.
func (s StringSet) Contains(item string) bool {
	_, ok := s[item]
	return ok
}

// Len returns the number of items in the set.
func (s StringSet) Len() int {
	return len(s)
}

// Sorted returns the items in lexicographic order.
func (s StringSet) Sorted() []string {
	items := make([]string, 0, len(s))
	for item := range s {
		items = append(items, item)
	}
	sort.Strings(items)
	return items
}

// FindDuplicates returns every filename present in two or more of the given
// sets. Each unordered pair of sets is intersected once and the intersections
// are unioned, so a filename shared by three albums is still reported once.
// Quadratic in the number of albums, which is fine for manifest-sized input.
func FindDuplicates(sets []StringSet) StringSet {
	duplicates := make(StringSet)
	for i, a := range sets {
		for _, b := range sets[i+1:] {
			for name := range a {
				if b.Contains(name) {
					duplicates.Add(name)
				}
			}
		}
	}
	return duplicates
}
