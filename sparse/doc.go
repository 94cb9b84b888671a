// Package sparse provides the dense and sparse matrix primitives that back
// the UMAP pipeline: a row-major Dense float64 matrix, a COOrdinate-format
// sparse matrix (sorted, deduplicated triplets), and a Compressed-Sparse-Row
// matrix, together with the elementwise and symmetric combinators the fuzzy
// simplicial set builder needs (A+Aᵀ, A∘Aᵀ, row-normalization by row max).
//
// What & Why:
//
//	The fuzzy simplicial set graph UMAP builds is a weighted, mostly-empty
//	N×N adjacency structure with O(N·k) non-zero entries for k neighbors.
//	Dense storage would cost O(N²); COO/CSR keep it at O(nnz). Dense itself
//	remains the backing store for the embedding and any small-N pairwise
//	distance matrix, where O(N²) is already the intended cost.
//
// Invariants:
//
//	COO: entries sorted lexicographically by (row, col); no duplicate
//	(row, col) pairs; 0 <= row < Rows, 0 <= col < Cols. COO is treated as
//	immutable once constructed — every "mutating" operation returns a fresh
//	COO rather than editing in place.
//
//	CSR: Indptr has length Rows+1; Indptr[r]..Indptr[r+1] locates row r's
//	non-zeros in Indices/Data. Column order within a row is not required by
//	the contract, but SortIndices is available for operations that benefit
//	from it (merge-join combinators).
//
// Complexity:
//
//	Dense.At/Set: O(1). COO.Get: O(log nnz) via binary search on sorted
//	order. CSR.Get: O(deg). CSR.Transpose/EliminateZeros/Add/Sub/Hadamard:
//	O(nnz). COO.Transpose: O(nnz log nnz) (re-sort).
//	PlusTranspose/HadamardTranspose: O(nnz log nnz) — a COO.Transpose
//	followed by a sparse merge-join, with no dense intermediate.
package sparse
