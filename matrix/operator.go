package matrix

// uint32 vector summation
func Uint32VectorSum(data []uint32) uint32 {
	sum := uint32(0)
	for _, d := range data {
		sum += d
	}
	return sum
}

// RowSums returns a column vector whose r-th element is the sum of
// the r-th row of m.
func RowSums(m *Uint32Matrix) *Uint32Matrix {
	r, _ := m.Shape()
	sums := NewUint32Matrix(r, uint32(1))
	for ridx := uint32(0); ridx < r; ridx += 1 {
		sums.Set(ridx, uint32(0), Uint32VectorSum(m.GetRow(ridx)))
	}
	return sums
}
