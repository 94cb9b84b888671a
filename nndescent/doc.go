// Package nndescent implements the NN-descent algorithm (Dong, Moses &
// Li 2011): starting from the leaf buckets of a random-projection forest,
// iteratively refine each point's approximate k-nearest-neighbor list by
// exploring its current candidates' candidates (spec §4.5).
package nndescent
