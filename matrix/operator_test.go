package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUint32VectorSum(t *testing.T) {
	v := []uint32{3, 4, 5}
	assert.Equal(t, uint32(12), Uint32VectorSum(v))
}

func TestRowSums(t *testing.T) {
	m := NewUint32Matrix(uint32(3), uint32(2))
	m.Set(0, 0, 1)
	m.Set(0, 1, 2)
	m.Set(2, 1, 7)

	sums := RowSums(m)

	r, c := sums.Shape()
	assert.Equal(t, uint32(3), r)
	assert.Equal(t, uint32(1), c)
	assert.Equal(t, []uint32{3, 0, 7}, sums.GetCol(0))
}
