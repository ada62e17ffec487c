package xerrors

var (
	// ErrEmptyTree 树不含任何顶点。
	ErrEmptyTree = New(ErrInvalidArg, 400101, "empty tree", "tree must contain at least one vertex", nil)
	// ErrInvalidRoot 根顶点越界。
	ErrInvalidRoot = New(ErrInvalidArg, 400102, "invalid root", "root must be in range [0, n)", nil)
	// ErrMalformedTree 输入不是连通无环树。
	ErrMalformedTree = New(ErrInvalidArg, 400103, "malformed tree", "breadth-first traversal from root did not reach every vertex", nil)
	// ErrIndexOutOfRange 顶点或下标越界。
	ErrIndexOutOfRange = New(ErrInvalidArg, 400104, "index out of range", "vertex or index must be in range [0, n)", nil)
	// ErrInvalidRange 区间端点颠倒。
	ErrInvalidRange = New(ErrInvalidArg, 400105, "invalid range", "left endpoint must not exceed right endpoint", nil)
	// ErrNegativeWeight 边权为负。
	ErrNegativeWeight = New(ErrInvalidArg, 400106, "negative edge weight", "shortest distance requires non-negative edge weights", nil)
	// ErrInvalidSize 容量必须为正。
	ErrInvalidSize = New(ErrInvalidArg, 400107, "invalid size", "size must be positive", nil)
)
