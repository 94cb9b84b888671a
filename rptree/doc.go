// Package rptree builds a forest of random-projection trees over a dense
// point set and flattens each tree into a leaf array usable as the seed
// candidate pool for nearest-neighbor descent (spec §4.4).
//
// Design note (grounded on Snider-Poindexter's kd-tree, adapted):
//
//	kdtree_gonum.go builds a balanced tree by a deterministic median split on
//	the axis of maximum variance, walking index slices via a coords closure
//	rather than reordering the caller's data. rptree borrows that indices-
//	not-data recursion shape, but the split rule itself is UMAP's: instead of
//	an axis-aligned median, each internal node picks two random points from
//	its slice and splits on the hyperplane between them (perpendicular
//	bisector for Euclidean-family metrics, the angle bisector through the
//	origin for angular ones), because random-projection trees trade kd-tree's
//	exact median guarantee for O(1) split cost and approximate recall — the
//	right trade when the tree is only ever used to seed nearest-neighbor
//	descent, not to answer exact queries.
package rptree
