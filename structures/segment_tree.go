package structures

import (
	"cmp"
	"sync"

	"github.com/wyfcoding/algokit/xerrors"
)

// SegmentTree 是泛型线段树，支持单点更新与闭区间查询，两者复杂度均为 O(log N)。
// combine 必须满足结合律，identity 为其单位元（与任何值结合都返回该值本身）。
// 求和、区间最值、区间 gcd 等都可以通过选择不同的 combine 得到。
type SegmentTree[T any] struct {
	tree     []T          // 节点值，1-indexed，占用 4*N 空间。
	combine  func(T, T) T // 区间聚合函数。
	identity T            // combine 的单位元。
	n        int          // 原始数组的逻辑大小。
	mu       sync.RWMutex // 读写锁，用于保护线段树的并发访问。
}

// NewSegmentTree 创建一棵覆盖 n 个元素的线段树，所有元素初始为 identity。
func NewSegmentTree[T any](n int, identity T, combine func(T, T) T) (*SegmentTree[T], error) {
	if n <= 0 {
		return nil, xerrors.ErrInvalidSize
	}

	st := &SegmentTree[T]{
		tree:     make([]T, 4*n),
		combine:  combine,
		identity: identity,
		n:        n,
	}
	for i := range st.tree {
		st.tree[i] = identity
	}
	return st, nil
}

// NewSumSegmentTree 创建一棵区间求和线段树。
func NewSumSegmentTree(n int) (*SegmentTree[int64], error) {
	return NewSegmentTree[int64](n, 0, func(a, b int64) int64 { return a + b })
}

// NewMinSegmentTree 创建一棵区间最小值线段树。
// identity 为调用方提供的上界值（例如 math.MaxInt64）。
func NewMinSegmentTree[T cmp.Ordered](n int, identity T) (*SegmentTree[T], error) {
	return NewSegmentTree(n, identity, func(a, b T) T { return min(a, b) })
}

// NewMaxSegmentTree 创建一棵区间最大值线段树。
// identity 为调用方提供的下界值（例如 math.MinInt64）。
func NewMaxSegmentTree[T cmp.Ordered](n int, identity T) (*SegmentTree[T], error) {
	return NewSegmentTree(n, identity, func(a, b T) T { return max(a, b) })
}

// Len 返回原始数组的逻辑大小。
func (st *SegmentTree[T]) Len() int {
	return st.n
}

// Update 将索引 idx 处的元素更新为 val。
func (st *SegmentTree[T]) Update(idx int, val T) error {
	if idx < 0 || idx >= st.n {
		return xerrors.ErrIndexOutOfRange
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	st.update(1, 0, st.n-1, idx, val)
	return nil
}

// update 是 Update 的递归辅助函数。
// node 为当前线段树节点，[start, end] 为其覆盖的原始区间。
func (st *SegmentTree[T]) update(node, start, end, idx int, val T) {
	if start == end {
		st.tree[node] = val
		return
	}

	mid := (start + end) / 2
	if idx <= mid {
		st.update(2*node, start, mid, idx, val)
	} else {
		st.update(2*node+1, mid+1, end, idx, val)
	}

	st.tree[node] = st.combine(st.tree[2*node], st.tree[2*node+1])
}

// Query 返回闭区间 [left, right] 上所有元素经 combine 聚合的结果。
func (st *SegmentTree[T]) Query(left, right int) (T, error) {
	var zero T
	if left < 0 || right >= st.n {
		return zero, xerrors.ErrIndexOutOfRange
	}
	if left > right {
		return zero, xerrors.ErrInvalidRange
	}

	st.mu.RLock()
	defer st.mu.RUnlock()

	return st.query(1, 0, st.n-1, left, right), nil
}

// query 是 Query 的递归辅助函数。
func (st *SegmentTree[T]) query(node, start, end, left, right int) T {
	// 当前节点区间与查询区间不相交，返回单位元。
	if right < start || end < left {
		return st.identity
	}

	// 当前节点区间完全落在查询区间内，直接返回节点值。
	if left <= start && end <= right {
		return st.tree[node]
	}

	mid := (start + end) / 2
	return st.combine(
		st.query(2*node, start, mid, left, right),
		st.query(2*node+1, mid+1, end, left, right),
	)
}
