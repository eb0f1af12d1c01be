package export

// Matrix is a dense row-major numeric buffer.
type Matrix struct {
	Rows int
	Cols int
	Data []float64
}

// At returns the value at a position.
func (m *Matrix) At(row, col int) float64 {
	return m.Data[row*m.Cols+col]
}

// Shape returns the number of rows and columns.
func (m *Matrix) Shape() (rows, cols int) {
	return m.Rows, m.Cols
}

// Slices returns the matrix as nested rows.
func (m *Matrix) Slices() [][]float64 {
	out := make([][]float64, m.Rows)
	for i := range out {
		out[i] = m.Data[i*m.Cols : (i+1)*m.Cols]
	}
	return out
}

// ToMatrix exports the values to a numeric matrix shaped like the grid.
// Missing and non-numeric values become NaN; the first substitution logs one
// coercion warning per call.
func ToMatrix(g Grid, cfg Config) *Matrix {
	cfg.start(formatMatrix)
	rows, cols := g.Shape()
	rows, cols = max(rows, 0), max(cols, 0)
	m := &Matrix{Rows: rows, Cols: cols, Data: make([]float64, rows*cols)}
	coerced := false
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, ok := NumericValue(g.CellAt(i, j).Value)
			if !ok {
				coerced = true
			}
			m.Data[i*cols+j] = v
		}
	}
	if coerced {
		cfg.warn(noticeCoercion, MessageCoercion)
	}
	return m
}
