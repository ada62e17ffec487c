package structures

import (
	"github.com/wyfcoding/algokit/xerrors"
)

// DisjointSet 并查集（按秩合并 + 路径压缩）。
// 单次操作均摊复杂度 O(α(n))，α 为反 Ackermann 函数。非并发安全。
type DisjointSet struct {
	parent []int // parent[u] == u 表示 u 是所在集合的根。
	size   []int // 集合大小，仅在根上有效。
	rank   []int // 树高上界，仅在根上有效。
}

// NewDisjointSet 创建 n 个单元素集合。
func NewDisjointSet(n int) *DisjointSet {
	s := &DisjointSet{
		parent: make([]int, n),
		size:   make([]int, n),
		rank:   make([]int, n),
	}
	for u := 0; u < n; u++ {
		s.parent[u] = u
		s.size[u] = 1
	}
	return s
}

// Len 返回元素总数。
func (s *DisjointSet) Len() int {
	return len(s.parent)
}

// Find 返回元素 u 所在集合的根，沿途做路径压缩。
func (s *DisjointSet) Find(u int) (int, error) {
	if u < 0 || u >= len(s.parent) {
		return 0, xerrors.ErrIndexOutOfRange
	}
	return s.root(u), nil
}

// root 使用迭代方式查找根并压缩路径，防止深链导致栈溢出。
func (s *DisjointSet) root(u int) int {
	r := u
	for s.parent[r] != r {
		r = s.parent[r]
	}
	// 第二趟：将路径上所有节点直接挂到根。
	for s.parent[u] != r {
		s.parent[u], u = r, s.parent[u]
	}
	return r
}

// Union 合并 u 与 v 所在的集合。
// 两者原本不在同一集合时返回 true，否则不做任何事并返回 false。
func (s *DisjointSet) Union(u, v int) (bool, error) {
	if u < 0 || u >= len(s.parent) || v < 0 || v >= len(s.parent) {
		return false, xerrors.ErrIndexOutOfRange
	}

	r1 := s.root(u)
	r2 := s.root(v)
	if r1 == r2 {
		return false, nil
	}

	// 按秩合并：矮树挂到高树之下，秩相等时新根的秩加一。
	if s.rank[r1] <= s.rank[r2] {
		if s.rank[r1] == s.rank[r2] {
			s.rank[r2]++
		}
		s.parent[r1] = r2
		s.size[r2] += s.size[r1]
	} else {
		s.parent[r2] = r1
		s.size[r1] += s.size[r2]
	}

	return true, nil
}

// SameSet 判断 u 与 v 是否属于同一集合。
func (s *DisjointSet) SameSet(u, v int) (bool, error) {
	if u < 0 || u >= len(s.parent) || v < 0 || v >= len(s.parent) {
		return false, xerrors.ErrIndexOutOfRange
	}
	return s.root(u) == s.root(v), nil
}

// SetSize 返回 u 所在集合的元素个数。
func (s *DisjointSet) SetSize(u int) (int, error) {
	if u < 0 || u >= len(s.parent) {
		return 0, xerrors.ErrIndexOutOfRange
	}
	return s.size[s.root(u)], nil
}
