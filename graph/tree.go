// Package graph 提供了树与图上的经典算法实现（最近公共祖先、最短路径等）。
package graph

import (
	"github.com/wyfcoding/algokit/xerrors"
)

// Tree 描述一棵由稠密整数编号顶点构成的无向树的只读视图。
// 顶点编号范围为 [0, VertexCount())。实现方负责保证结构在算法运行期间不变。
type Tree interface {
	// VertexCount 返回顶点数 n。
	VertexCount() int
	// Neighbors 返回与顶点 v 相邻的所有顶点。
	Neighbors(v int) []int
}

// AdjacencyList 是 Tree 的邻接表实现。
type AdjacencyList struct {
	adj [][]int
}

// NewAdjacencyList 创建一个包含 n 个孤立顶点的邻接表。
func NewAdjacencyList(n int) *AdjacencyList {
	return &AdjacencyList{adj: make([][]int, n)}
}

// AddEdge 添加无向边 u-v，两个方向各记录一次。
func (g *AdjacencyList) AddEdge(u, v int) error {
	if u < 0 || u >= len(g.adj) || v < 0 || v >= len(g.adj) {
		return xerrors.ErrIndexOutOfRange
	}
	g.adj[u] = append(g.adj[u], v)
	g.adj[v] = append(g.adj[v], u)
	return nil
}

// VertexCount 返回顶点数。
func (g *AdjacencyList) VertexCount() int {
	return len(g.adj)
}

// Neighbors 返回顶点 v 的邻居。
func (g *AdjacencyList) Neighbors(v int) []int {
	return g.adj[v]
}
