package favorites

import "sort"

// Set is a toggle-membership set over product IDs. Not safe for concurrent
// use; the owning session serializes access.
type Set struct {
	ids map[int]struct{}
}

func NewSet() *Set {
	return &Set{ids: make(map[int]struct{})}
}

// Toggle adds the product if absent and removes it if present, returning
// the resulting membership.
func (s *Set) Toggle(productID int) bool {
	if _, ok := s.ids[productID]; ok {
		delete(s.ids, productID)
		return false
	}
	s.ids[productID] = struct{}{}
	return true
}

func (s *Set) Contains(productID int) bool {
	_, ok := s.ids[productID]
	return ok
}

// IDs returns the members sorted ascending for stable payloads.
func (s *Set) IDs() []int {
	out := make([]int, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

func (s *Set) Len() int {
	return len(s.ids)
}
