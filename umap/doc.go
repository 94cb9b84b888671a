// Package umap orchestrates the full UMAP pipeline: approximate kNN search
// (package rptree/nndescent, or brute-force pairwise search below the small-N
// threshold), bandwidth calibration (package smoothknn), fuzzy simplicial
// set construction and symmetrization (package fuzzyset), (a, b) kernel
// fitting (package curve), and negative-sampling SGD layout (package
// layout), behind a single Fit/Transform surface (spec §4.10).
//
// Configuration follows the functional-options idiom used throughout this
// module: Option values returned by the With* constructors are applied to a
// DefaultOptions() baseline inside New, which then calls Validate once and
// returns a configuration error synchronously rather than deferring it to
// Fit.
package umap
