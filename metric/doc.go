// Package metric defines the pluggable distance-function contract UMAP's
// core requires (spec §4.1) and a small registry of named, ready-to-use
// dissimilarity functions.
//
// Contract:
//
//	Func(x, y) must be non-negative, symmetric (Func(x,y) == Func(y,x)), and
//	zero on equal vectors (Func(x,x) == 0), except that an angular metric may
//	also return 0 for a zero vector compared against itself. Each metric
//	declares Properties{Angular, Categorical, Precomputed} describing how
//	callers (the forest builder, the orchestrator) must treat it: Angular
//	metrics change the random-projection-tree split rule; Categorical is
//	legal only for target metrics and routes through the specialized
//	intersection path; Precomputed indicates the input matrix already holds
//	pairwise distances (kNN is then computed by sorting rows instead of
//	evaluating Func).
package metric
