// Package layout runs the negative-sampling stochastic gradient descent that
// places a fuzzy simplicial set's vertices into a low-dimensional embedding:
// attractive forces along sampled edges, repulsive forces against randomly
// sampled non-edges, both governed by the (a, b) kernel curve fit by
// package curve (spec §4.9).
package layout
