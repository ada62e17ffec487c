package structures

import (
	"errors"
	"testing"

	"github.com/wyfcoding/algokit/xerrors"
)

func TestDisjointSetSingletons(t *testing.T) {
	const n = 10
	s := NewDisjointSet(n)
	if s.Len() != n {
		t.Fatalf("Len = %d, want %d", s.Len(), n)
	}
	for u := 0; u < n; u++ {
		r, err := s.Find(u)
		if err != nil || r != u {
			t.Errorf("Find(%d) = (%d, %v), want (%d, nil)", u, r, err, u)
		}
		if size, _ := s.SetSize(u); size != 1 {
			t.Errorf("SetSize(%d) = %d, want 1", u, size)
		}
	}
}

func TestDisjointSetUnion(t *testing.T) {
	s := NewDisjointSet(10)

	if same, _ := s.SameSet(0, 1); same {
		t.Errorf("0 and 1 in same set before union")
	}
	if joined, err := s.Union(0, 1); err != nil || !joined {
		t.Errorf("Union(0, 1) = (%v, %v), want (true, nil)", joined, err)
	}
	if same, _ := s.SameSet(0, 1); !same {
		t.Errorf("0 and 1 not in same set after union")
	}

	if joined, _ := s.Union(1, 2); !joined {
		t.Errorf("Union(1, 2) = false, want true")
	}
	if same, _ := s.SameSet(0, 2); !same {
		t.Errorf("transitive membership lost: 0 and 2 not in same set")
	}
	// Joining an already merged pair is a no-op.
	if joined, _ := s.Union(0, 2); joined {
		t.Errorf("Union(0, 2) on merged sets = true, want false")
	}
}

func TestDisjointSetSizes(t *testing.T) {
	const n = 10
	s := NewDisjointSet(n)

	if _, err := s.Union(0, 1); err != nil {
		t.Fatalf("Union: %v", err)
	}
	for _, u := range []int{0, 1} {
		if size, _ := s.SetSize(u); size != 2 {
			t.Errorf("SetSize(%d) = %d, want 2", u, size)
		}
	}
	for u := 2; u < n; u++ {
		if size, _ := s.SetSize(u); size != 1 {
			t.Errorf("SetSize(%d) = %d, want 1", u, size)
		}
	}

	for u := 2; u < n; u++ {
		if _, err := s.Union(u-1, u); err != nil {
			t.Fatalf("Union: %v", err)
		}
	}
	for u := 0; u < n; u++ {
		if size, _ := s.SetSize(u); size != n {
			t.Errorf("SetSize(%d) = %d, want %d after merging everything", u, size, n)
		}
	}
}

func TestDisjointSetBounds(t *testing.T) {
	s := NewDisjointSet(3)

	if _, err := s.Find(3); !errors.Is(err, xerrors.ErrIndexOutOfRange) {
		t.Errorf("Find(3): %v, want ErrIndexOutOfRange", err)
	}
	if _, err := s.Union(-1, 0); !errors.Is(err, xerrors.ErrIndexOutOfRange) {
		t.Errorf("Union(-1, 0): %v, want ErrIndexOutOfRange", err)
	}
	if _, err := s.SameSet(0, 5); !errors.Is(err, xerrors.ErrIndexOutOfRange) {
		t.Errorf("SameSet(0, 5): %v, want ErrIndexOutOfRange", err)
	}
	if _, err := s.SetSize(-2); !errors.Is(err, xerrors.ErrIndexOutOfRange) {
		t.Errorf("SetSize(-2): %v, want ErrIndexOutOfRange", err)
	}
}

func TestDisjointSetDeepChainCompression(t *testing.T) {
	// A long chain of unions must still resolve quickly and agree on one root.
	const n = 100000
	s := NewDisjointSet(n)
	for u := 1; u < n; u++ {
		if _, err := s.Union(u-1, u); err != nil {
			t.Fatalf("Union: %v", err)
		}
	}
	root, err := s.Find(0)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	for _, u := range []int{1, n / 2, n - 1} {
		if r, _ := s.Find(u); r != root {
			t.Errorf("Find(%d) = %d, want %d", u, r, root)
		}
	}
}
