// Package heap implements the bounded per-query candidate heap that nearest-
// neighbor descent uses to track the best K candidates found so far for a
// query point (spec §4.3).
//
// Design note (grounded on dijkstra.nodePQ, adapted):
//
//	dijkstra's nodePQ is an unbounded container/heap min-heap of edges with
//	no duplicate rejection — stale entries are filtered at pop time via a
//	visited set. NNHeap has a different contract: it is bounded to exactly K
//	slots, ordered as a MAX-heap (root is the worst candidate, so it can be
//	replaced cheaply when a better one arrives), and a push must reject
//	duplicates among the CURRENT K members rather than filtering them later
//	— NN-descent's convergence proof relies on not re-inserting a neighbor
//	that is already a candidate. Because K is small (tens, not thousands),
//	the O(K) linear duplicate scan on push is cheaper in practice than
//	maintaining a parallel index map, and keeps the structure a flat array
//	instead of container/heap's interface-boxed design — so NNHeap is a
//	hand-rolled array-backed heap rather than a container/heap adapter.
package heap
