package sparse

import "sort"

// COO is a COOrdinate-format sparse matrix: parallel Row/Col/Data slices,
// sorted lexicographically by (row, col) with no duplicate (row, col) pairs.
// COO is treated as immutable once constructed: every operation below
// returns a freshly allocated COO rather than mutating the receiver.
type COO struct {
	Rows, Cols int
	Row, Col   []int32
	Data       []float64
}

// NewCOOFromTriplets builds a canonical COO from (possibly unsorted,
// possibly duplicate) triplets. Duplicate (row, col) pairs are summed
// before the invariant (sorted, deduplicated) is established, matching the
// "mutating operations return a fresh COO" contract: this constructor is the
// one place raw triplet streams are canonicalized.
func NewCOOFromTriplets(rows, cols int, row, col []int32, data []float64) (*COO, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(row) != len(col) || len(row) != len(data) {
		return nil, matrixErrorf("NewCOOFromTriplets", ErrLengthMismatch)
	}

	n := len(row)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		ia, ib := order[a], order[b]
		if row[ia] != row[ib] {
			return row[ia] < row[ib]
		}
		return col[ia] < col[ib]
	})

	outRow := make([]int32, 0, n)
	outCol := make([]int32, 0, n)
	outData := make([]float64, 0, n)
	for _, idx := range order {
		r, c, v := row[idx], col[idx], data[idx]
		if r < 0 || int(r) >= rows || c < 0 || int(c) >= cols {
			return nil, matrixErrorf("NewCOOFromTriplets", ErrOutOfRange)
		}
		if len(outRow) > 0 && outRow[len(outRow)-1] == r && outCol[len(outCol)-1] == c {
			outData[len(outData)-1] += v
			continue
		}
		outRow = append(outRow, r)
		outCol = append(outCol, c)
		outData = append(outData, v)
	}

	return &COO{Rows: rows, Cols: cols, Row: outRow, Col: outCol, Data: outData}, nil
}

// NNZ returns the number of stored (row, col) entries.
func (m *COO) NNZ() int { return len(m.Data) }

// Get returns the value at (r, c), 0 if absent, via binary search on the
// sorted order. Complexity: O(log nnz): the row's contiguous run is located
// by binary search over all entries, then the column within that run.
func (m *COO) Get(r, c int) (float64, error) {
	if r < 0 || r >= m.Rows || c < 0 || c >= m.Cols {
		return 0, matrixErrorf("COO.Get", ErrOutOfRange)
	}
	lo := sort.Search(len(m.Row), func(i int) bool { return m.Row[i] >= int32(r) })
	hi := sort.Search(len(m.Row), func(i int) bool { return m.Row[i] > int32(r) })
	block := sort.Search(hi-lo, func(i int) bool { return m.Col[lo+i] >= int32(c) })
	if lo+block < hi && m.Col[lo+block] == int32(c) {
		return m.Data[lo+block], nil
	}

	return 0, nil
}

// Transpose returns a freshly allocated, canonical transposed COO.
// Complexity: O(nnz log nnz) for re-sorting.
func (m *COO) Transpose() (*COO, error) {
	return NewCOOFromTriplets(m.Cols, m.Rows, append([]int32(nil), m.Col...), append([]int32(nil), m.Row...), append([]float64(nil), m.Data...))
}

// EliminateZeros drops explicit zero entries, preserving canonical order.
// Complexity: O(nnz).
func (m *COO) EliminateZeros() *COO {
	outRow := make([]int32, 0, len(m.Row))
	outCol := make([]int32, 0, len(m.Col))
	outData := make([]float64, 0, len(m.Data))
	for i, v := range m.Data {
		if v == 0 {
			continue
		}
		outRow = append(outRow, m.Row[i])
		outCol = append(outCol, m.Col[i])
		outData = append(outData, v)
	}

	return &COO{Rows: m.Rows, Cols: m.Cols, Row: outRow, Col: outCol, Data: outData}
}

// sameShape validates a, b are both non-nil and share dimensions.
func sameShapeCOO(op string, a, b *COO) error {
	if a == nil || b == nil {
		return matrixErrorf(op, ErrNilMatrix)
	}
	if a.Rows != b.Rows || a.Cols != b.Cols {
		return matrixErrorf(op, ErrDimensionMismatch)
	}

	return nil
}

// mergeCombine performs a sorted merge-join over a and b's entries, calling
// combine(av, bv) for every (row, col) present in either operand (missing
// side passed as 0). The result is canonical (sorted, zero-eliminated only
// when requested by the caller via a subsequent EliminateZeros call).
func mergeCombine(a, b *COO, combine func(av, bv float64) float64) *COO {
	outRow := make([]int32, 0, len(a.Data)+len(b.Data))
	outCol := make([]int32, 0, len(a.Data)+len(b.Data))
	outData := make([]float64, 0, len(a.Data)+len(b.Data))

	i, j := 0, 0
	for i < len(a.Data) || j < len(b.Data) {
		switch {
		case j >= len(b.Data) || (i < len(a.Data) && less(a.Row[i], a.Col[i], b.Row[j], b.Col[j])):
			outRow = append(outRow, a.Row[i])
			outCol = append(outCol, a.Col[i])
			outData = append(outData, combine(a.Data[i], 0))
			i++
		case i >= len(a.Data) || less(b.Row[j], b.Col[j], a.Row[i], a.Col[i]):
			outRow = append(outRow, b.Row[j])
			outCol = append(outCol, b.Col[j])
			outData = append(outData, combine(0, b.Data[j]))
			j++
		default:
			outRow = append(outRow, a.Row[i])
			outCol = append(outCol, a.Col[i])
			outData = append(outData, combine(a.Data[i], b.Data[j]))
			i++
			j++
		}
	}

	return &COO{Rows: a.Rows, Cols: a.Cols, Row: outRow, Col: outCol, Data: outData}
}

func less(r1, c1, r2, c2 int32) bool {
	if r1 != r2 {
		return r1 < r2
	}
	return c1 < c2
}

// Add computes a+b elementwise over same-shape operands. Complexity: O(nnz_a+nnz_b).
func Add(a, b *COO) (*COO, error) {
	if err := sameShapeCOO("Add", a, b); err != nil {
		return nil, err
	}

	return mergeCombine(a, b, func(av, bv float64) float64 { return av + bv }), nil
}

// Sub computes a-b elementwise over same-shape operands. Complexity: O(nnz_a+nnz_b).
func Sub(a, b *COO) (*COO, error) {
	if err := sameShapeCOO("Sub", a, b); err != nil {
		return nil, err
	}

	return mergeCombine(a, b, func(av, bv float64) float64 { return av - bv }), nil
}

// Hadamard computes the elementwise product a∘b over same-shape operands.
// Entries present in only one operand contribute 0 and are dropped.
// Complexity: O(nnz_a+nnz_b).
func Hadamard(a, b *COO) (*COO, error) {
	if err := sameShapeCOO("Hadamard", a, b); err != nil {
		return nil, err
	}

	return mergeCombine(a, b, func(av, bv float64) float64 { return av * bv }).EliminateZeros(), nil
}

// Max computes the elementwise maximum of a and b over same-shape operands.
// Complexity: O(nnz_a+nnz_b).
func Max(a, b *COO) (*COO, error) {
	if err := sameShapeCOO("Max", a, b); err != nil {
		return nil, err
	}

	return mergeCombine(a, b, func(av, bv float64) float64 {
		if av > bv {
			return av
		}
		return bv
	}), nil
}

// Scale multiplies every stored entry by alpha. Complexity: O(nnz).
func (m *COO) Scale(alpha float64) *COO {
	outData := make([]float64, len(m.Data))
	for i, v := range m.Data {
		outData[i] = v * alpha
	}

	return &COO{Rows: m.Rows, Cols: m.Cols, Row: append([]int32(nil), m.Row...), Col: append([]int32(nil), m.Col...), Data: outData}
}

// RowMax returns, for each row, the maximum stored value (0 for empty rows).
// Complexity: O(nnz).
func (m *COO) RowMax() []float64 {
	out := make([]float64, m.Rows)
	for i, v := range m.Data {
		r := m.Row[i]
		if v > out[r] {
			out[r] = v
		}
	}

	return out
}

// RowNormalize divides each row by its maximum stored element (not by the
// row sum), per the fuzzy-set reset contract. Rows whose max is 0 are left
// as all-zero. Complexity: O(nnz).
func (m *COO) RowNormalize() *COO {
	maxes := m.RowMax()
	outData := make([]float64, len(m.Data))
	for i, v := range m.Data {
		mx := maxes[m.Row[i]]
		if mx == 0 {
			outData[i] = 0
			continue
		}
		outData[i] = v / mx
	}

	return &COO{Rows: m.Rows, Cols: m.Cols, Row: append([]int32(nil), m.Row...), Col: append([]int32(nil), m.Col...), Data: outData}
}

// PlusTranspose computes A+Aᵀ over sparse storage for a square A: it builds
// Aᵀ with Transpose (an O(nnz log nnz) sort) and merge-joins it with A, so no
// dense intermediate is materialized. Complexity: O(nnz log nnz), not O(nnz).
func (m *COO) PlusTranspose() (*COO, error) {
	if m.Rows != m.Cols {
		return nil, matrixErrorf("PlusTranspose", ErrNonSquare)
	}
	t, err := m.Transpose()
	if err != nil {
		return nil, err
	}

	return mergeCombine(m, t, func(av, bv float64) float64 { return av + bv }), nil
}

// HadamardTranspose computes A∘Aᵀ directly for a square A. Complexity: O(nnz log nnz).
func (m *COO) HadamardTranspose() (*COO, error) {
	if m.Rows != m.Cols {
		return nil, matrixErrorf("HadamardTranspose", ErrNonSquare)
	}
	t, err := m.Transpose()
	if err != nil {
		return nil, err
	}

	return mergeCombine(m, t, func(av, bv float64) float64 { return av * bv }).EliminateZeros(), nil
}

// ToCOO returns the receiver, for API symmetry with CSR.ToCOO.
func (m *COO) ToCOO() *COO { return m }

// ToCSR converts to compressed-sparse-row form. Complexity: O(nnz).
func (m *COO) ToCSR() *CSR {
	indptr := make([]int32, m.Rows+1)
	for _, r := range m.Row {
		indptr[r+1]++
	}
	for i := 0; i < m.Rows; i++ {
		indptr[i+1] += indptr[i]
	}
	indices := make([]int32, len(m.Col))
	copy(indices, m.Col)
	data := make([]float64, len(m.Data))
	copy(data, m.Data)

	return &CSR{Rows: m.Rows, Cols: m.Cols, Indptr: indptr, Indices: indices, Data: data}
}

// ToDense materializes the matrix as a Dense, for small-N / debugging paths.
func (m *COO) ToDense() (*Dense, error) {
	d, err := NewDense(m.Rows, m.Cols)
	if err != nil {
		return nil, err
	}
	for i, v := range m.Data {
		_ = d.Set(int(m.Row[i]), int(m.Col[i]), v)
	}

	return d, nil
}
