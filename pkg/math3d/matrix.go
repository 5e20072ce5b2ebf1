package math3d

// MaxMatrixSize is the largest supported matrix dimension.
const MaxMatrixSize = 4

// Matrix is a square matrix of up to 4x4 stored in row-major order.
// Only the top-left Size×Size block is meaningful.
//
// Matrix is a value type: assignment copies all elements.
type Matrix struct {
	m    [MaxMatrixSize][MaxMatrixSize]float64
	size int
}

// NewMatrix returns a zero-filled matrix of the given size.
// The size is clamped to [1, MaxMatrixSize].
func NewMatrix(size int) Matrix {
	return Matrix{size: clampSize(size)}
}

// MatrixFromRows builds a matrix from row literals.
// The size is the number of rows (at most MaxMatrixSize); entries past the
// size are ignored and missing entries are zero.
func MatrixFromRows(rows ...[]float64) Matrix {
	m := NewMatrix(len(rows))
	for r := 0; r < m.size; r++ {
		for c := 0; c < len(rows[r]) && c < m.size; c++ {
			m.m[r][c] = rows[r][c]
		}
	}
	return m
}

// Identity returns the 4x4 identity matrix.
func Identity() Matrix {
	return IdentityN(MaxMatrixSize)
}

// IdentityN returns the identity matrix of the given size.
func IdentityN(size int) Matrix {
	m := NewMatrix(size)
	for i := 0; i < m.size; i++ {
		m.m[i][i] = 1
	}
	return m
}

func clampSize(size int) int {
	if size > MaxMatrixSize {
		return MaxMatrixSize
	}
	if size < 1 {
		return 1
	}
	return size
}

// Size returns the active dimension.
func (m Matrix) Size() int {
	return m.size
}

// At returns the element at (row, col).
func (m Matrix) At(row, col int) float64 {
	return m.m[row][col]
}

// Set sets the element at (row, col).
func (m *Matrix) Set(row, col int, val float64) {
	m.m[row][col] = val
}

// Mul multiplies two matrices: a * b. The result has a's size.
//
//nolint:st1016 // a*b naming convention is clearer for matrix multiplication
func (a Matrix) Mul(b Matrix) Matrix {
	out := NewMatrix(a.size)
	for row := 0; row < a.size; row++ {
		for col := 0; col < a.size; col++ {
			var sum float64
			for k := 0; k < a.size; k++ {
				sum += a.m[row][k] * b.m[k][col]
			}
			out.m[row][col] = sum
		}
	}
	return out
}

// MulTuple transforms t by m.
func (m Matrix) MulTuple(t Tuple) Tuple {
	in := [MaxMatrixSize]float64{t.X, t.Y, t.Z, t.W}
	var out [MaxMatrixSize]float64
	for row := 0; row < m.size; row++ {
		var sum float64
		for k := 0; k < m.size; k++ {
			sum += m.m[row][k] * in[k]
		}
		out[row] = sum
	}
	return Tuple{out[0], out[1], out[2], out[3]}
}

// Transpose returns the transposed matrix.
func (m Matrix) Transpose() Matrix {
	out := NewMatrix(m.size)
	for row := 0; row < m.size; row++ {
		for col := 0; col < m.size; col++ {
			out.m[col][row] = m.m[row][col]
		}
	}
	return out
}

// Determinant returns the determinant, using the direct formula for 2x2
// matrices and cofactor expansion along row 0 otherwise.
func (m Matrix) Determinant() float64 {
	switch m.size {
	case 1:
		return m.m[0][0]
	case 2:
		return m.m[0][0]*m.m[1][1] - m.m[0][1]*m.m[1][0]
	}
	var det float64
	for col := 0; col < m.size; col++ {
		det += m.m[0][col] * m.Cofactor(0, col)
	}
	return det
}

// Submatrix returns m with the given row and column removed.
func (m Matrix) Submatrix(row, col int) Matrix {
	out := NewMatrix(m.size - 1)
	r := 0
	for i := 0; i < m.size; i++ {
		if i == row {
			continue
		}
		c := 0
		for j := 0; j < m.size; j++ {
			if j == col {
				continue
			}
			out.m[r][c] = m.m[i][j]
			c++
		}
		r++
	}
	return out
}

// Minor returns the determinant of the submatrix at (row, col).
func (m Matrix) Minor(row, col int) float64 {
	return m.Submatrix(row, col).Determinant()
}

// Cofactor returns the minor at (row, col), negated when row+col is odd.
func (m Matrix) Cofactor(row, col int) float64 {
	minor := m.Minor(row, col)
	if (row+col)%2 == 1 {
		return -minor
	}
	return minor
}

// IsInvertible reports whether the determinant is non-zero.
// No tolerance is applied.
func (m Matrix) IsInvertible() bool {
	return m.Determinant() != 0
}

// Inverse returns the inverse computed as the transposed cofactor matrix
// divided by the determinant.
// The result is undefined (Inf/NaN) for a singular matrix; check
// IsInvertible first when that matters.
func (m Matrix) Inverse() Matrix {
	det := m.Determinant()
	out := NewMatrix(m.size)
	for row := 0; row < m.size; row++ {
		for col := 0; col < m.size; col++ {
			out.m[col][row] = m.Cofactor(row, col) / det
		}
	}
	return out
}

// Equal reports whether both matrices have the same size and identical
// elements.
func (m Matrix) Equal(o Matrix) bool {
	return m == o
}

// ApproxEqual compares the active blocks element-wise to ApproxDigits.
func (m Matrix) ApproxEqual(o Matrix) bool {
	return m.equalToDigits(o, ApproxDigits)
}

// NearlyEqual compares the active blocks element-wise to NearlyDigits.
func (m Matrix) NearlyEqual(o Matrix) bool {
	return m.equalToDigits(o, NearlyDigits)
}

func (m Matrix) equalToDigits(o Matrix, digits int) bool {
	if m.size != o.size {
		return false
	}
	for row := 0; row < m.size; row++ {
		for col := 0; col < m.size; col++ {
			if !EqualToDigits(m.m[row][col], o.m[row][col], digits) {
				return false
			}
		}
	}
	return true
}
