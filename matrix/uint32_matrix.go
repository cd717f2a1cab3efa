package matrix

// Uint32Matrix is a dense count table. The data layout is row major,
// i.e. the (i*c + j)-th element of the data slice is the [i, j]-th
// element of the matrix. A vector is a matrix with one column.
type Uint32Matrix struct {
	nrow uint32
	ncol uint32
	data []uint32
}

// NewUint32Matrix creates a zeroed Uint32Matrix with r rows and c columns.
// It panics if either dimension is zero.
func NewUint32Matrix(r, c uint32) *Uint32Matrix {
	if r == 0 || c == 0 {
		panic(ErrBadShape)
	}
	return &Uint32Matrix{
		nrow: r,
		ncol: c,
		data: make([]uint32, r*c),
	}
}

// get the shape of the matrix
func (m *Uint32Matrix) Shape() (uint32, uint32) {
	return m.nrow, m.ncol
}

// get the [r, c]-th element of the matrix
func (m *Uint32Matrix) Get(r, c uint32) uint32 {
	return m.data[m.index(r, c)]
}

// get a copy of the r-th row of the matrix
func (m *Uint32Matrix) GetRow(r uint32) []uint32 {
	if r >= m.nrow {
		panic(ErrIndexOutOfRange)
	}
	row := make([]uint32, m.ncol)
	copy(row, m.data[r*m.ncol:(r+1)*m.ncol])
	return row
}

// get a copy of the c-th column of the matrix
func (m *Uint32Matrix) GetCol(c uint32) []uint32 {
	if c >= m.ncol {
		panic(ErrIndexOutOfRange)
	}
	column := make([]uint32, m.nrow)
	for r := uint32(0); r < m.nrow; r += 1 {
		column[r] = m.data[r*m.ncol+c]
	}
	return column
}

// set val to the [r, c]-th element of the matrix
func (m *Uint32Matrix) Set(r, c uint32, val uint32) {
	m.data[m.index(r, c)] = val
}

// increment the [r, c]-th element of the matrix by val
func (m *Uint32Matrix) Incr(r, c uint32, val uint32) {
	m.data[m.index(r, c)] += val
}

// Decr decrements the [r, c]-th element of the matrix by val. Counts
// never wrap around: it panics if the element is smaller than val.
func (m *Uint32Matrix) Decr(r, c uint32, val uint32) {
	idx := m.index(r, c)
	if m.data[idx] < val {
		panic(ErrNegativeCount)
	}
	m.data[idx] -= val
}

// Equal reports whether both matrices have the same shape and elements.
func (m *Uint32Matrix) Equal(o *Uint32Matrix) bool {
	if m.nrow != o.nrow || m.ncol != o.ncol {
		return false
	}
	for i, v := range m.data {
		if o.data[i] != v {
			return false
		}
	}
	return true
}

func (m *Uint32Matrix) index(r, c uint32) uint32 {
	if r >= m.nrow || c >= m.ncol {
		panic(ErrIndexOutOfRange)
	}
	return r*m.ncol + c
}
