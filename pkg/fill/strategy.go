// Package fill provides the imputation strategies: per-sequence fills
// (interpolation, observation carry, constant/reducer, random sampling)
// and whole-matrix fills (nearest-neighbor, low-rank completion).
package fill

import (
	"context"
	"encoding/binary"
	"hash/fnv"
	"math"

	"github.com/wdm0006/refill/pkg/refill"
)

// Strategy fills missing slots in a single one-dimensional sequence.
// Strategies hold only their own immutable parameters; two instances are
// equal iff all parameters are equal.
type Strategy interface {
	Name() string
	Fill(ctx context.Context, v refill.Vector) error
	Equal(other Strategy) bool
	Hash() uint64
}

// MatrixStrategy fills missing entries using the whole matrix at once.
// Implementations compute from a snapshot of the input values and never
// read back in-progress output as if it were original data.
type MatrixStrategy interface {
	Name() string
	FillMatrix(ctx context.Context, m *refill.FloatMatrix) error
	Equal(other MatrixStrategy) bool
	Hash() uint64
}

// hashParams hashes a strategy name together with its parameter words.
func hashParams(name string, parts ...uint64) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(name))
	var buf [8]byte
	for _, p := range parts {
		binary.LittleEndian.PutUint64(buf[:], p)
		_, _ = h.Write(buf[:])
	}
	return h.Sum64()
}

func floatBits(v float64) uint64 { return math.Float64bits(v) }
