// SPDX-License-Identifier: MIT

package commands

import (
	"encoding/binary"
	"math"

	"github.com/spaolacci/murmur3"

	"github.com/giserh/RedisGraph/sparse"
)

// digest hashes the shape and the column-major entries of m. Standard and
// hypersparse copies of the same matrix give the same digest.
func digest(m *sparse.Matrix[float64]) uint64 {
	h := murmur3.New64()
	var buf [8]byte
	put := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = h.Write(buf[:])
	}
	put(uint64(m.Rows()))
	put(uint64(m.Cols()))
	for _, e := range m.Entries() {
		put(uint64(e.Row))
		put(uint64(e.Col))
		put(math.Float64bits(e.Val))
	}
	return h.Sum64()
}
