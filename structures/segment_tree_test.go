package structures

import (
	"errors"
	"math"
	"testing"

	"github.com/wyfcoding/algokit/xerrors"
)

func TestSumSegmentTree(t *testing.T) {
	st, err := NewSumSegmentTree(8)
	if err != nil {
		t.Fatalf("NewSumSegmentTree: %v", err)
	}

	values := []int64{3, 1, 4, 1, 5, 9, 2, 6}
	for i, v := range values {
		if err := st.Update(i, v); err != nil {
			t.Fatalf("Update(%d, %d): %v", i, v, err)
		}
	}

	cases := []struct {
		left, right int
		want        int64
	}{
		{0, 7, 31},
		{0, 0, 3},
		{2, 4, 10},
		{5, 7, 17},
	}
	for _, c := range cases {
		got, err := st.Query(c.left, c.right)
		if err != nil {
			t.Fatalf("Query(%d, %d): %v", c.left, c.right, err)
		}
		if got != c.want {
			t.Errorf("Query(%d, %d) = %d, want %d", c.left, c.right, got, c.want)
		}
	}

	// Point update must be reflected in every covering range.
	if err := st.Update(3, 10); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got, _ := st.Query(0, 7); got != 40 {
		t.Errorf("Query(0, 7) after update = %d, want 40", got)
	}
	if got, _ := st.Query(3, 3); got != 10 {
		t.Errorf("Query(3, 3) after update = %d, want 10", got)
	}
}

func TestMinMaxSegmentTree(t *testing.T) {
	minTree, err := NewMinSegmentTree(5, math.MaxInt)
	if err != nil {
		t.Fatalf("NewMinSegmentTree: %v", err)
	}
	maxTree, err := NewMaxSegmentTree(5, math.MinInt)
	if err != nil {
		t.Fatalf("NewMaxSegmentTree: %v", err)
	}

	values := []int{7, 2, 9, 4, 6}
	for i, v := range values {
		if err := minTree.Update(i, v); err != nil {
			t.Fatalf("min Update: %v", err)
		}
		if err := maxTree.Update(i, v); err != nil {
			t.Fatalf("max Update: %v", err)
		}
	}

	if got, _ := minTree.Query(0, 4); got != 2 {
		t.Errorf("min Query(0, 4) = %d, want 2", got)
	}
	if got, _ := minTree.Query(2, 4); got != 4 {
		t.Errorf("min Query(2, 4) = %d, want 4", got)
	}
	if got, _ := maxTree.Query(0, 4); got != 9 {
		t.Errorf("max Query(0, 4) = %d, want 9", got)
	}
	if got, _ := maxTree.Query(3, 4); got != 6 {
		t.Errorf("max Query(3, 4) = %d, want 6", got)
	}
}

func TestSegmentTreeCustomCombine(t *testing.T) {
	// gcd is associative with 0 as identity.
	var gcd func(a, b int) int
	gcd = func(a, b int) int {
		if b == 0 {
			return a
		}
		return gcd(b, a%b)
	}
	st, err := NewSegmentTree(4, 0, gcd)
	if err != nil {
		t.Fatalf("NewSegmentTree: %v", err)
	}
	for i, v := range []int{12, 18, 30, 7} {
		if err := st.Update(i, v); err != nil {
			t.Fatalf("Update: %v", err)
		}
	}
	if got, _ := st.Query(0, 2); got != 6 {
		t.Errorf("gcd Query(0, 2) = %d, want 6", got)
	}
	if got, _ := st.Query(0, 3); got != 1 {
		t.Errorf("gcd Query(0, 3) = %d, want 1", got)
	}
}

func TestSegmentTreeValidation(t *testing.T) {
	if _, err := NewSumSegmentTree(0); !errors.Is(err, xerrors.ErrInvalidSize) {
		t.Errorf("NewSumSegmentTree(0): %v, want ErrInvalidSize", err)
	}

	st, err := NewSumSegmentTree(4)
	if err != nil {
		t.Fatalf("NewSumSegmentTree: %v", err)
	}
	if err := st.Update(4, 1); !errors.Is(err, xerrors.ErrIndexOutOfRange) {
		t.Errorf("Update(4): %v, want ErrIndexOutOfRange", err)
	}
	if _, err := st.Query(-1, 2); !errors.Is(err, xerrors.ErrIndexOutOfRange) {
		t.Errorf("Query(-1, 2): %v, want ErrIndexOutOfRange", err)
	}
	if _, err := st.Query(3, 1); !errors.Is(err, xerrors.ErrInvalidRange) {
		t.Errorf("Query(3, 1): %v, want ErrInvalidRange", err)
	}
}
