package sparse

import "fmt"

// Dense is a row-major matrix of float64 values, adapted from the flat-slice
// layout used throughout this module's linear algebra: r is rows, c is
// columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int
	data []float64
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrInvalidDimensions.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFromRows builds a Dense from row-major slice-of-slices. All rows
// must share the same length; a mismatched row yields ErrDimensionMismatch.
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 {
		return nil, ErrInvalidDimensions
	}
	c := len(rows[0])
	if c == 0 {
		return nil, ErrInvalidDimensions
	}
	d, err := NewDense(len(rows), c)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, matrixErrorf("NewDenseFromRows", ErrDimensionMismatch)
		}
		copy(d.data[i*c:(i+1)*c], row)
	}

	return d, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col). Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, matrixErrorf(fmt.Sprintf("Dense.At(%d,%d)", row, col), err)
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col). Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return matrixErrorf(fmt.Sprintf("Dense.Set(%d,%d)", row, col), err)
	}
	m.data[idx] = v

	return nil
}

// Raw exposes the backing flat slice for callers in this module that need
// the fast-path loop (RowView etc.); it is not part of the stable public
// surface for arbitrary consumers.
func (m *Dense) Raw() []float64 { return m.data }

// RowView returns the backing slice for row i without copying. Mutating the
// returned slice mutates m. Complexity: O(1).
func (m *Dense) RowView(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, matrixErrorf("Dense.RowView", ErrOutOfRange)
	}

	return m.data[i*m.c : (i+1)*m.c], nil
}

// RowCopy returns a freshly allocated copy of row i. Complexity: O(c).
func (m *Dense) RowCopy(i int) ([]float64, error) {
	row, err := m.RowView(i)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(row))
	copy(out, row)

	return out, nil
}

// SetRow overwrites row i with the values in row (len(row) must equal Cols()).
func (m *Dense) SetRow(i int, row []float64) error {
	dst, err := m.RowView(i)
	if err != nil {
		return err
	}
	if len(row) != len(dst) {
		return matrixErrorf("Dense.SetRow", ErrDimensionMismatch)
	}
	copy(dst, row)

	return nil
}

// Clone returns a deep copy of the Dense matrix. Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return &Dense{r: m.r, c: m.c, data: out}
}

// Transpose returns a freshly allocated transposed Dense. Complexity: O(r*c).
func (m *Dense) Transpose() *Dense {
	out := &Dense{r: m.c, c: m.r, data: make([]float64, len(m.data))}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			out.data[j*out.c+i] = m.data[i*m.c+j]
		}
	}

	return out
}

// Fill sets every element of m to v. Complexity: O(r*c).
func (m *Dense) Fill(v float64) {
	var i int
	for i = range m.data {
		m.data[i] = v
	}
}

// String implements fmt.Stringer for debugging. Complexity: O(r*c).
func (m *Dense) String() string {
	s := ""
	var i, j int
	for i = 0; i < m.r; i++ {
		s += "["
		for j = 0; j < m.c; j++ {
			s += fmt.Sprintf("%g", m.data[i*m.c+j])
			if j < m.c-1 {
				s += ", "
			}
		}
		s += "]\n"
	}

	return s
}
