package fill

import (
	"context"
	"sort"

	"github.com/wdm0006/refill/pkg/refill"
)

// KNN fills each missing entry from the K nearest rows that have the
// entry's column present. Distance between two rows is the mean squared
// difference over their jointly-present columns, so wider overlaps do not
// look farther apart. Rows with no jointly-present column form no
// distance and never donate; a missing entry without any donor stays
// missing. Equal distances resolve to the lower row index.
type KNN struct {
	K int
}

func (s *KNN) Name() string { return "knn" }

func (s *KNN) FillMatrix(ctx context.Context, m *refill.FloatMatrix) error {
	k := s.K
	if k <= 0 {
		k = 1
	}
	rows, cols := m.Dims()
	src := m.Clone() // snapshot; all reads go through src

	type donor struct {
		row  int
		dist float64
	}

	for r := 0; r < rows; r++ {
		if rowMissing(src, r, cols) == 0 {
			continue
		}
		// distances from row r to every other row
		donors := make([]donor, 0, rows-1)
		for o := 0; o < rows; o++ {
			if o == r {
				continue
			}
			d, ok := rowDistance(src, r, o, cols)
			if !ok {
				continue
			}
			donors = append(donors, donor{row: o, dist: d})
		}
		if len(donors) == 0 {
			continue
		}
		sort.SliceStable(donors, func(i, j int) bool {
			if donors[i].dist != donors[j].dist {
				return donors[i].dist < donors[j].dist
			}
			return donors[i].row < donors[j].row
		})

		for c := 0; c < cols; c++ {
			if !src.MissingAt(r, c) {
				continue
			}
			var num, den float64
			used := 0
			for _, d := range donors {
				if used == k {
					break
				}
				if src.MissingAt(d.row, c) {
					continue
				}
				w := 1.0 / (d.dist + 1e-12)
				num += w * src.At(d.row, c)
				den += w
				used++
			}
			if used == 0 {
				continue
			}
			m.Set(r, c, num/den)
		}
	}
	return nil
}

func (s *KNN) Equal(other MatrixStrategy) bool {
	o, ok := other.(*KNN)
	return ok && s.K == o.K
}

func (s *KNN) Hash() uint64 { return hashParams(s.Name(), uint64(s.K)) }

func rowMissing(m *refill.FloatMatrix, r, cols int) int {
	n := 0
	for c := 0; c < cols; c++ {
		if m.MissingAt(r, c) {
			n++
		}
	}
	return n
}

// rowDistance returns the mean squared difference over jointly-present
// columns, and false when the rows share none.
func rowDistance(m *refill.FloatMatrix, a, b, cols int) (float64, bool) {
	var sum float64
	n := 0
	for c := 0; c < cols; c++ {
		if m.MissingAt(a, c) || m.MissingAt(b, c) {
			continue
		}
		d := m.At(a, c) - m.At(b, c)
		sum += d * d
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}
