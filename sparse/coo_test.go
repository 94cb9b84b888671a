package sparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCOO_CanonicalOrder(t *testing.T) {
	// Entries given out of order with a duplicate (1,0) pair to be summed.
	row := []int32{2, 0, 1, 1}
	col := []int32{0, 1, 0, 0}
	data := []float64{5, 2, 1, 3}

	m, err := NewCOOFromTriplets(3, 3, row, col, data)
	require.NoError(t, err)

	require.Equal(t, 3, m.NNZ())
	for i := 1; i < len(m.Row); i++ {
		prevKey := [2]int32{m.Row[i-1], m.Col[i-1]}
		key := [2]int32{m.Row[i], m.Col[i]}
		assert.True(t, prevKey[0] < key[0] || (prevKey[0] == key[0] && prevKey[1] < key[1]))
	}

	v, err := m.Get(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 4.0, v) // 1 + 3 summed
}

func TestCOO_OutOfRangeRejected(t *testing.T) {
	_, err := NewCOOFromTriplets(2, 2, []int32{5}, []int32{0}, []float64{1})
	require.Error(t, err)
}

func TestCOO_CSR_RoundTrip(t *testing.T) {
	m, err := NewCOOFromTriplets(3, 3, []int32{0, 1, 2}, []int32{1, 2, 0}, []float64{1, 2, 3})
	require.NoError(t, err)

	csr := m.ToCSR()
	back, err := csr.ToCOO()
	require.NoError(t, err)

	require.Equal(t, m.Row, back.Row)
	require.Equal(t, m.Col, back.Col)
	require.Equal(t, m.Data, back.Data)
}

func TestCOO_EliminateZeros(t *testing.T) {
	m, err := NewCOOFromTriplets(2, 2, []int32{0, 1}, []int32{0, 1}, []float64{0, 5})
	require.NoError(t, err)

	cleaned := m.EliminateZeros()
	assert.Equal(t, 1, cleaned.NNZ())
}

func TestCOO_PlusTranspose_SparsityBound(t *testing.T) {
	m, err := NewCOOFromTriplets(3, 3, []int32{0, 1}, []int32{1, 2}, []float64{1, 1})
	require.NoError(t, err)

	sum, err := m.PlusTranspose()
	require.NoError(t, err)
	assert.LessOrEqual(t, sum.NNZ(), 2*m.NNZ())

	had, err := m.HadamardTranspose()
	require.NoError(t, err)
	assert.LessOrEqual(t, had.NNZ(), m.NNZ())
}

func TestCOO_PlusTranspose_RequiresSquare(t *testing.T) {
	m, err := NewCOOFromTriplets(2, 3, []int32{0}, []int32{1}, []float64{1})
	require.NoError(t, err)

	_, err = m.PlusTranspose()
	require.ErrorIs(t, err, ErrNonSquare)
}

func TestCOO_RowNormalize_DividesByMax(t *testing.T) {
	m, err := NewCOOFromTriplets(1, 3, []int32{0, 0, 0}, []int32{0, 1, 2}, []float64{1, 2, 4})
	require.NoError(t, err)

	norm := m.RowNormalize()
	v, _ := norm.Get(0, 2)
	assert.Equal(t, 1.0, v)
	v, _ = norm.Get(0, 0)
	assert.Equal(t, 0.25, v)
}

func TestCOO_Max(t *testing.T) {
	a, _ := NewCOOFromTriplets(2, 2, []int32{0, 1}, []int32{0, 1}, []float64{1, 5})
	b, _ := NewCOOFromTriplets(2, 2, []int32{0, 1}, []int32{0, 1}, []float64{3, 2})

	m, err := Max(a, b)
	require.NoError(t, err)
	v, _ := m.Get(0, 0)
	assert.Equal(t, 3.0, v)
	v, _ = m.Get(1, 1)
	assert.Equal(t, 5.0, v)
}
