// Package structures 提供了通用的内存数据结构实现（二叉堆、并查集、线段树等）。
package structures

import (
	"cmp"
)

// Heap 是基于切片的二叉堆，出队顺序由构造时的比较函数决定。
// Push/Pop 复杂度 O(log n)，Peek 复杂度 O(1)。非并发安全。
type Heap[T any] struct {
	xs     []T
	before func(a, b T) bool // before(a, b) 为真表示 a 先于 b 出队。
}

// NewHeap 创建一个大顶堆：最大元素最先出队。
func NewHeap[T cmp.Ordered]() *Heap[T] {
	return &Heap[T]{
		before: func(a, b T) bool { return a > b },
	}
}

// NewHeapFunc 创建一个按自定义顺序出队的堆。
// before(a, b) 为真表示 a 应当先于 b 出队。
func NewHeapFunc[T any](before func(a, b T) bool) *Heap[T] {
	return &Heap[T]{before: before}
}

// Len 返回堆中元素个数。
func (h *Heap[T]) Len() int {
	return len(h.xs)
}

// Empty 判断堆是否为空。
func (h *Heap[T]) Empty() bool {
	return len(h.xs) == 0
}

// Push 插入一个元素并自底向上调整。
func (h *Heap[T]) Push(x T) {
	h.xs = append(h.xs, x)
	i := len(h.xs) - 1
	for i > 0 {
		parent := (i - 1) / 2
		if !h.before(h.xs[i], h.xs[parent]) {
			break
		}
		h.xs[i], h.xs[parent] = h.xs[parent], h.xs[i]
		i = parent
	}
}

// Peek 返回堆顶元素但不移除；堆为空时返回 ok = false。
func (h *Heap[T]) Peek() (T, bool) {
	if len(h.xs) == 0 {
		var zero T
		return zero, false
	}
	return h.xs[0], true
}

// Pop 移除并返回堆顶元素；堆为空时返回 ok = false。
func (h *Heap[T]) Pop() (T, bool) {
	if len(h.xs) == 0 {
		var zero T
		return zero, false
	}

	n := len(h.xs)
	h.xs[0], h.xs[n-1] = h.xs[n-1], h.xs[0]
	top := h.xs[n-1]
	h.xs = h.xs[:n-1]

	// 自顶向下调整：与两个孩子中更优先的交换，直到堆序恢复。
	i := 0
	for {
		next := i
		if l := 2*i + 1; l < len(h.xs) && h.before(h.xs[l], h.xs[next]) {
			next = l
		}
		if r := 2*i + 2; r < len(h.xs) && h.before(h.xs[r], h.xs[next]) {
			next = r
		}
		if next == i {
			break
		}
		h.xs[i], h.xs[next] = h.xs[next], h.xs[i]
		i = next
	}

	return top, true
}
