package sparse

import "sort"

// CSR is a compressed-sparse-row matrix: Indptr has length Rows+1;
// Indptr[r]..Indptr[r+1] locates row r's non-zeros within Indices/Data.
// Columns within a row are not required to be sorted by the contract, but
// SortIndices is available for callers that benefit from merge-joinable rows.
type CSR struct {
	Rows, Cols int
	Indptr     []int32
	Indices    []int32
	Data       []float64
}

// NewCSR validates and wraps the given arrays into a CSR. The arrays are not
// copied: callers constructing a CSR should pass ownership.
func NewCSR(rows, cols int, indptr, indices []int32, data []float64) (*CSR, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(indptr) != rows+1 {
		return nil, matrixErrorf("NewCSR", ErrLengthMismatch)
	}
	if len(indices) != len(data) {
		return nil, matrixErrorf("NewCSR", ErrLengthMismatch)
	}

	return &CSR{Rows: rows, Cols: cols, Indptr: indptr, Indices: indices, Data: data}, nil
}

// NNZ returns the number of stored entries.
func (m *CSR) NNZ() int { return len(m.Data) }

// RowRange returns the [lo, hi) slice bounds of row r within Indices/Data.
func (m *CSR) RowRange(r int) (int32, int32) { return m.Indptr[r], m.Indptr[r+1] }

// Get returns the value at (r, c), scanning row r's degree. Complexity: O(deg).
func (m *CSR) Get(r, c int) (float64, error) {
	if r < 0 || r >= m.Rows || c < 0 || c >= m.Cols {
		return 0, matrixErrorf("CSR.Get", ErrOutOfRange)
	}
	lo, hi := m.RowRange(r)
	for k := lo; k < hi; k++ {
		if int(m.Indices[k]) == c {
			return m.Data[k], nil
		}
	}

	return 0, nil
}

// SortIndices returns a copy of m with each row's (col, data) pairs sorted
// by ascending column. Complexity: O(nnz log deg).
func (m *CSR) SortIndices() *CSR {
	indices := append([]int32(nil), m.Indices...)
	data := append([]float64(nil), m.Data...)
	for r := 0; r < m.Rows; r++ {
		lo, hi := m.RowRange(r)
		idx := make([]int, hi-lo)
		for i := range idx {
			idx[i] = int(lo) + i
		}
		sort.Slice(idx, func(a, b int) bool { return indices[idx[a]] < indices[idx[b]] })
		cols := make([]int32, len(idx))
		vals := make([]float64, len(idx))
		for i, k := range idx {
			cols[i] = indices[k]
			vals[i] = data[k]
		}
		copy(indices[lo:hi], cols)
		copy(data[lo:hi], vals)
	}

	return &CSR{Rows: m.Rows, Cols: m.Cols, Indptr: append([]int32(nil), m.Indptr...), Indices: indices, Data: data}
}

// ToCOO converts to coordinate form. Complexity: O(nnz log nnz) (canonicalization sort).
func (m *CSR) ToCOO() (*COO, error) {
	row := make([]int32, len(m.Data))
	for r := 0; r < m.Rows; r++ {
		lo, hi := m.RowRange(r)
		for k := lo; k < hi; k++ {
			row[k] = int32(r)
		}
	}

	return NewCOOFromTriplets(m.Rows, m.Cols, row, append([]int32(nil), m.Indices...), append([]float64(nil), m.Data...))
}

// ToCSR returns the receiver, for API symmetry with COO.ToCSR.
func (m *CSR) ToCSR() *CSR { return m }

// Transpose returns a freshly allocated transposed CSR. Complexity: O(nnz).
func (m *CSR) Transpose() *CSR {
	indptr := make([]int32, m.Cols+1)
	for _, c := range m.Indices {
		indptr[c+1]++
	}
	for i := 0; i < m.Cols; i++ {
		indptr[i+1] += indptr[i]
	}
	indices := make([]int32, len(m.Indices))
	data := make([]float64, len(m.Data))
	cursor := append([]int32(nil), indptr...)
	for r := 0; r < m.Rows; r++ {
		lo, hi := m.RowRange(r)
		for k := lo; k < hi; k++ {
			c := m.Indices[k]
			pos := cursor[c]
			indices[pos] = int32(r)
			data[pos] = m.Data[k]
			cursor[c]++
		}
	}

	return &CSR{Rows: m.Cols, Cols: m.Rows, Indptr: indptr, Indices: indices, Data: data}
}
