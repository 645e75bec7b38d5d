// SPDX-License-Identifier: MIT

package sparse

// Format is the structural representation tag of a Matrix.
type Format uint8

const (
	// Standard stores a pointer for every column.
	Standard Format = iota
	// Hypersparse stores only non-empty columns plus their index list.
	Hypersparse
)

// String implements fmt.Stringer.
func (f Format) String() string {
	if f == Hypersparse {
		return "hypersparse"
	}
	return "standard"
}

// Entry is one (row, col, value) triplet.
type Entry[T any] struct {
	Row, Col int
	Val      T
}

// Columns is the read-only, column-wise view the kernels are written against.
//
// Implementations must return row slices in strictly increasing order and
// must not expect callers to modify the returned slices.
type Columns[T any] interface {
	// Rows returns the number of rows.
	Rows() int
	// Cols returns the number of columns.
	Cols() int
	// IsHyper reports whether column existence is resolved by search.
	IsHyper() bool
	// NVals returns the number of stored entries.
	NVals() int
	// Column returns the row indices and values of column j (nil when empty).
	Column(j int) (rows []int, vals []T)
	// HasColumn reports whether column j holds at least one entry.
	HasColumn(j int) bool
	// NumVectors returns the number of stored column slots: Cols() for a
	// standard matrix, the length of the column list for a hypersparse one.
	NumVectors() int
	// ColumnAt returns the column index and contents of the slot at pos.
	ColumnAt(pos int) (j int, rows []int, vals []T)
}
