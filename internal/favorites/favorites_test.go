package favorites

import "testing"

func TestToggleRoundTrip(t *testing.T) {
	s := NewSet()
	if !s.Toggle(7) {
		t.Fatalf("expected membership after first toggle")
	}
	if !s.Contains(7) {
		t.Fatalf("expected contains after toggle")
	}
	if s.Toggle(7) {
		t.Fatalf("expected removal on second toggle")
	}
	if s.Contains(7) || s.Len() != 0 {
		t.Fatalf("set not back to original membership")
	}
}

func TestIDsSorted(t *testing.T) {
	s := NewSet()
	s.Toggle(5)
	s.Toggle(1)
	s.Toggle(3)
	ids := s.IDs()
	want := []int{1, 3, 5}
	if len(ids) != len(want) {
		t.Fatalf("unexpected ids %v", ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("unexpected ids %v", ids)
		}
	}
}
