// Package sequence 提供了序列相关算法（最长公共子序列、编辑距离）。
package sequence

// LCS 返回两个序列最长公共子序列的长度。
// 复杂度 O(n*m)；优化：滚动数组将空间压缩到 O(m)。
func LCS[T comparable](a, b []T) int {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return 0
	}

	// dp[i][j] 为 a[i:] 与 b[j:] 的 LCS 长度，自底向上递推。
	prev := make([]int, m+1) // 第 i+1 行。
	curr := make([]int, m+1) // 第 i 行。
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			if a[i] == b[j] {
				curr[j] = 1 + prev[j+1]
			} else {
				curr[j] = max(prev[j], curr[j+1])
			}
		}
		prev, curr = curr, prev
	}

	return prev[0]
}

// EditDistance 返回将序列 a 变换为序列 b 所需的最少编辑次数（Levenshtein 距离）。
// 插入、删除、替换均计一次操作。复杂度 O(n*m)，空间 O(m)。
func EditDistance[T comparable](a, b []T) int {
	n, m := len(a), len(b)

	prev := make([]int, m+1) // 第 i-1 行。
	curr := make([]int, m+1) // 第 i 行。
	for j := 0; j <= m; j++ {
		prev[j] = j // 空序列变换到 b[:j] 需要 j 次插入。
	}

	for i := 1; i <= n; i++ {
		curr[0] = i
		for j := 1; j <= m; j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1]
			} else {
				curr[j] = 1 + min(prev[j-1], prev[j], curr[j-1])
			}
		}
		prev, curr = curr, prev
	}

	return prev[m]
}
