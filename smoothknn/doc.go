// Package smoothknn calibrates, for every point, a local bandwidth sigma and
// a local connectivity offset rho such that the sum of exponential kernel
// weights to its k nearest neighbors matches log2(k) (spec §4.6) — UMAP's
// smooth_knn_dist step, which turns raw kNN distances into a per-point
// fuzzy-simplicial-set radius before fuzzyset builds the membership graph.
//
// Design note (grounded on danaugrs/go-tsne's d2p, adapted):
//
//	d2p binary-searches a Gaussian precision beta per point so the resulting
//	distribution's entropy matches a target log(perplexity), doubling an
//	open upper bound until it brackets the root and then bisecting. Calibrate
//	borrows that exact search shape — open bound, double until finite,
//	bisect to tolerance — but searches directly on sigma (not its
//	reciprocal) against UMAP's sum-of-exponentials target rather than an
//	entropy target, because that is the quantity spec.md's formula defines.
package smoothknn
