// Package umapgo is a dependency-light UMAP (Uniform Manifold Approximation
// and Projection) implementation for dimensionality reduction.
//
// 🚀 What is umapgo?
//
//	A deterministic, thread-free-by-design toolkit that brings together:
//
//	  • Approximate nearest neighbors: random-projection forest + NN-descent
//	  • Fuzzy simplicial sets: smooth-knn calibration, fuzzy union, target
//	    intersection for semi-supervised fits
//	  • Layout: negative-sampling SGD over a fitted (a, b) kernel curve
//
// ✨ Why umapgo?
//
//   - Deterministic — every RNG stream is explicitly seeded, no global state
//   - Composable    — each stage is its own package with a narrow contract
//   - Pure Go       — no cgo, no BLAS, no hidden dependencies
//
// Everything is organized under one subpackage per pipeline stage:
//
//	metric/     — distance kernels (euclidean, cosine, manhattan, ...)
//	sparse/     — Dense, COO and CSR matrix types shared across stages
//	heap/       — bounded max-heap of neighbor candidates
//	rptree/     — random-projection forest for candidate generation
//	nndescent/  — NN-descent refinement of approximate neighbor graphs
//	smoothknn/  — smooth-knn-dist bandwidth calibration (sigma, rho)
//	fuzzyset/   — membership strengths, fuzzy union, target intersection
//	curve/      — (a, b) kernel parameter fit for the embedding's similarity curve
//	layout/     — negative-sampling SGD optimizer
//	umap/       — Options, New, Fit/FitTransform/Transform: the public API
//
// Quick usage:
//
//	u, err := umap.New(umap.WithNNeighbors(15), umap.WithMinDist(0.1))
//	embedding, err := u.FitTransform(data, nil)
//
//	go get github.com/katalvlaran/umapgo
package umapgo
