package analysis

import "unicode/utf8"

// orderedSet keeps insertion order; output order is observable.
type orderedSet struct {
	items []string
	seen  map[string]struct{}
}

func newOrderedSet() *orderedSet {
	return &orderedSet{items: []string{}, seen: make(map[string]struct{})}
}

func (s *orderedSet) add(v string) bool {
	if _, ok := s.seen[v]; ok {
		return false
	}
	s.seen[v] = struct{}{}
	s.items = append(s.items, v)
	return true
}

func (s *orderedSet) len() int { return len(s.items) }

func (s *orderedSet) list() []string { return s.items }

func unique(values []string) []string {
	set := newOrderedSet()
	for _, v := range values {
		set.add(v)
	}
	return set.list()
}

func capList(values []string, n int) []string {
	if len(values) > n {
		return values[:n]
	}
	return values
}

func runeLen(s string) int { return utf8.RuneCountInString(s) }
