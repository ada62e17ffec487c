package graph

import (
	"github.com/wyfcoding/algokit/structures"
	"github.com/wyfcoding/algokit/xerrors"
)

// Weight 可用作边权的数值类型。
type Weight interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64 | ~float32 | ~float64
}

// Edge 是邻接表中的一条带权出边。
type Edge[W Weight] struct {
	To     int
	Weight W
}

// candidate 是优先队列中的一个候选距离条目。
type candidate[W Weight] struct {
	dist   W
	vertex int
}

// ShortestDistances 计算 source 到每个顶点的最短距离（Dijkstra 算法）。
// 边权必须非负，出现负权立即返回 ErrNegativeWeight。
// 返回 dist 与 reached 两个并行切片：reached[v] 为 false 时 v 不可达，dist[v] 无意义。
// 复杂度 O((V+E) log E)。
func ShortestDistances[W Weight](adj [][]Edge[W], source int) ([]W, []bool, error) {
	n := len(adj)
	if source < 0 || source >= n {
		return nil, nil, xerrors.ErrIndexOutOfRange
	}

	dist := make([]W, n)
	reached := make([]bool, n)

	// 小顶堆按候选距离出队；被更短路径取代的过期条目懒删除。
	pq := structures.NewHeapFunc(func(a, b candidate[W]) bool { return a.dist < b.dist })
	reached[source] = true
	pq.Push(candidate[W]{dist: dist[source], vertex: source})

	for {
		c, ok := pq.Pop()
		if !ok {
			break
		}
		if dist[c.vertex] < c.dist {
			continue // 过期条目。
		}

		for _, e := range adj[c.vertex] {
			var zero W
			if e.Weight < zero {
				return nil, nil, xerrors.ErrNegativeWeight
			}
			if e.To < 0 || e.To >= n {
				return nil, nil, xerrors.ErrIndexOutOfRange
			}
			next := c.dist + e.Weight
			if !reached[e.To] || next < dist[e.To] {
				dist[e.To] = next
				reached[e.To] = true
				pq.Push(candidate[W]{dist: next, vertex: e.To})
			}
		}
	}

	return dist, reached, nil
}
