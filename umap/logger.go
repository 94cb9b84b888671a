package umap

// Logger receives non-fatal diagnostics: numerical degeneracies (fewer than
// n_neighbors distinct points, NN-descent under-filling a row) that spec §7
// classifies as warnings rather than errors. It is deliberately minimal —
// the teacher's algorithmic packages carry no logging dependency of their
// own, so Fit/Transform accept any printf-shaped sink instead of requiring
// one (see DESIGN.md for why no third-party logging library is pulled in
// for this leaf concern).
type Logger interface {
	Printf(format string, args ...interface{})
}

type noopLogger struct{}

func (noopLogger) Printf(string, ...interface{}) {}
