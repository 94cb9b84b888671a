// Package fuzzyset builds and combines the fuzzy simplicial set that UMAP
// uses as its high-dimensional graph: a weighted, directed-then-symmetrized
// adjacency over the approximate kNN relation, with membership strengths
// derived from each point's calibrated (sigma, rho) pair (spec §4.7).
package fuzzyset
