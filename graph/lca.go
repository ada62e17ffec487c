package graph

import (
	"math/bits"

	"github.com/sourcegraph/conc"

	"github.com/wyfcoding/algokit/xerrors"
)

// ancestor 是跳表中的一个单元：某个顶点向上 2^i 步的祖先。
// 显式的 ok 标记表示"该祖先不存在"，取代以 -1 之类的魔数充当哨兵的做法。
type ancestor struct {
	vertex int
	ok     bool
}

// AncestorTable 实现了基于倍增（Binary Lifting）的最近公共祖先查询。
// 预处理复杂度 O(N log N)，单次查询复杂度 O(log N)。
// 构建完成后表不可变，可被任意多个 goroutine 无锁并发查询；
// 树结构发生变化时必须丢弃并重新构建。
type AncestorTable struct {
	up     []ancestor // 扁平化跳表: up[v*levels+i] 为顶点 v 的第 2^i 个祖先。
	depth  []int      // depth[root] = 0，其余为到根的边数。
	levels int
	n      int
}

// levelCount 计算 ceil(log2(n))；n <= 1 时为 0。
func levelCount(n int) int {
	if n <= 1 {
		return 0
	}
	return bits.Len(uint(n - 1))
}

// BuildAncestorTable 以 root 为根对树做一次广度优先预处理，
// 生成深度数组与倍增跳表。
//
// 输入必须是 n >= 1 个顶点构成的连通无环无向树：
// n == 0 返回 ErrEmptyTree，root 越界返回 ErrInvalidRoot，
// 遍历未覆盖全部顶点（不连通，或从根可达一个环）返回 ErrMalformedTree。
// 构建失败时不返回任何表，不存在部分初始化的状态。
func BuildAncestorTable(tree Tree, root int) (*AncestorTable, error) {
	n := tree.VertexCount()
	if n == 0 {
		return nil, xerrors.ErrEmptyTree
	}
	if root < 0 || root >= n {
		return nil, xerrors.ErrInvalidRoot
	}

	levels := levelCount(n)
	t := &AncestorTable{
		up:     make([]ancestor, n*levels),
		depth:  make([]int, n),
		levels: levels,
		n:      n,
	}

	// BFS 使用显式队列而非递归，栈空间与树深无关。
	// 顶点按深度非降序出队，访问 v 时其父顶点的跳表列已经完整，
	// up[v][i] = up[up[v][i-1]][i-1] 的递推才能成立。
	seen := make([]bool, n)
	seen[root] = true
	visited := 1
	queue := make([]int, 1, n)
	queue[0] = root

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		for _, v := range tree.Neighbors(u) {
			if v < 0 || v >= n {
				return nil, xerrors.ErrMalformedTree
			}
			if seen[v] {
				continue
			}
			seen[v] = true
			visited++
			t.depth[v] = t.depth[u] + 1
			t.up[v*levels] = ancestor{vertex: u, ok: true}
			for i := 1; i < levels; i++ {
				mid := t.up[v*levels+i-1]
				if !mid.ok {
					break // 更高层的祖先同样不存在，单元保持零值。
				}
				t.up[v*levels+i] = t.up[mid.vertex*levels+i-1]
			}
			queue = append(queue, v)
		}
	}

	if visited != n {
		return nil, xerrors.ErrMalformedTree
	}

	return t, nil
}

// VertexCount 返回构建时的顶点数。
func (t *AncestorTable) VertexCount() int {
	return t.n
}

// Levels 返回跳表层数 ceil(log2(n))。
func (t *AncestorTable) Levels() int {
	return t.levels
}

// Depth 返回顶点 v 到根的边数，根顶点为 0。
func (t *AncestorTable) Depth(v int) (int, error) {
	if v < 0 || v >= t.n {
		return 0, xerrors.ErrIndexOutOfRange
	}
	return t.depth[v], nil
}

// Parent 返回顶点 v 的直接父顶点；根顶点返回 ok = false。
func (t *AncestorTable) Parent(v int) (int, bool, error) {
	if v < 0 || v >= t.n {
		return 0, false, xerrors.ErrIndexOutOfRange
	}
	if t.levels == 0 {
		// 单顶点树没有跳表，唯一的顶点即是根。
		return 0, false, nil
	}
	a := t.up[v*t.levels]
	return a.vertex, a.ok, nil
}

// jump 从顶点 u 向根方向跳 k 步。
// k 按二进制位分解为至多 levels 次跳跃；
// 只要 k 不超过 depth[u]，路径上每一跳的祖先必然存在。
func (t *AncestorTable) jump(u, k int) int {
	for i := t.levels - 1; i >= 0; i-- {
		if k&(1<<uint(i)) == 0 {
			continue
		}
		if a := t.up[u*t.levels+i]; a.ok {
			u = a.vertex
		}
	}
	return u
}

// LCA 查询顶点 u 与 v 的最近公共祖先。单次查询复杂度 O(log n)。
func (t *AncestorTable) LCA(u, v int) (int, error) {
	if u < 0 || u >= t.n || v < 0 || v >= t.n {
		return 0, xerrors.ErrIndexOutOfRange
	}

	// 1. 将较深的顶点提升到与较浅顶点相同的深度。
	if t.depth[u] < t.depth[v] {
		u, v = v, u
	}
	u = t.jump(u, t.depth[u]-t.depth[v])

	// 深度相等后两者重合，说明其中一个本就是另一个的祖先。
	if u == v {
		return u, nil
	}

	// 2. 自高层向低层二分：仅当两侧的 2^i 级祖先都存在且不同才同时上跳，
	// 因此始终停留在真正的 LCA 之下，收敛到 LCA 的两个孩子。
	for i := t.levels - 1; i >= 0; i-- {
		au := t.up[u*t.levels+i]
		av := t.up[v*t.levels+i]
		if au.ok && av.ok && au.vertex != av.vertex {
			u = au.vertex
			v = av.vertex
		}
	}

	// 收敛后 u 与 v 的父顶点相同，即为答案。
	// u != v 蕴含两者深度至少为 1，父顶点必然存在。
	return t.up[u*t.levels].vertex, nil
}

// Distance 返回顶点 u 到 v 的路径长度（边数）。
func (t *AncestorTable) Distance(u, v int) (int, error) {
	w, err := t.LCA(u, v)
	if err != nil {
		return 0, err
	}
	return t.depth[u] + t.depth[v] - 2*t.depth[w], nil
}

// VertexPair 是一次批量查询中的一对顶点。
type VertexPair struct {
	U, V int
}

// ResolveAll 并发回答一批 LCA 查询，结果与 pairs 一一对应。
// 表只读，查询间无共享可变状态，可以按查询粒度直接并发。
// 任一顶点越界时整批失败，不返回部分结果。
func (t *AncestorTable) ResolveAll(pairs []VertexPair) ([]int, error) {
	for _, p := range pairs {
		if p.U < 0 || p.U >= t.n || p.V < 0 || p.V >= t.n {
			return nil, xerrors.ErrIndexOutOfRange
		}
	}

	out := make([]int, len(pairs))
	var wg conc.WaitGroup
	for i, p := range pairs {
		i, p := i, p
		wg.Go(func() {
			out[i], _ = t.LCA(p.U, p.V) // 越界已预先校验，此处不会失败。
		})
	}
	wg.Wait()

	return out, nil
}
