package rptree

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/umapgo/metric"
	"github.com/katalvlaran/umapgo/sparse"
)

// node is one internal or leaf node of a single random-projection tree.
// Internal nodes carry a splitting hyperplane; leaf nodes carry the row
// indices that landed in that bucket.
type node struct {
	normal  []float64
	offset  float64
	left    *node
	right   *node
	indices []int32 // non-nil only on leaves
}

// Tree is one random-projection tree over the rows of a dense point set.
type Tree struct {
	root *node
}

// Forest is a collection of independently randomized Trees; querying all of
// them and pooling their leaves gives nearest-neighbor descent a better seed
// than any single tree would (spec §4.4).
type Forest struct {
	Trees    []*Tree
	LeafSize int
}

// FlatTree is an array-of-structs-of-arrays encoding of one Tree: node ids
// are positions in Hyperplanes/Offsets/Children. A leaf is flagged by a
// negative Children pair, whose magnitudes encode (start+1, end+1) of its
// bucket within Indices — negative-and-offset-by-one so that id 0 (a valid
// start) is still distinguishable from "not a leaf".
type FlatTree struct {
	Hyperplanes [][]float64
	Offsets     []float64
	Children    [][2]int32
	Indices     []int32
	LeafSize    int32
}

// BuildForest grows nTrees independent random-projection trees over data's
// rows. Each internal split picks two random points from the node's current
// index set and splits on the hyperplane between them: the perpendicular
// bisector of the segment for Euclidean-family metrics, or the bisector of
// the angle between the two (normalized) points when angular is true. A
// node becomes a leaf once its index set shrinks to at most
// max(10, nNeighbors) points.
func BuildForest(data *sparse.Dense, nNeighbors, nTrees int, rng *rand.Rand, angular bool, _ metric.Func) (*Forest, error) {
	if data == nil || data.Rows() == 0 {
		return nil, ErrEmptyData
	}
	if nTrees <= 0 {
		return nil, ErrTooFewTrees
	}
	if rng == nil {
		return nil, ErrNilRNG
	}

	leafSize := nNeighbors
	if leafSize < 10 {
		leafSize = 10
	}

	base := make([]int32, data.Rows())
	for i := range base {
		base[i] = int32(i)
	}

	trees := make([]*Tree, nTrees)
	for t := 0; t < nTrees; t++ {
		idx := append([]int32(nil), base...)
		trees[t] = &Tree{root: buildNode(data, idx, leafSize, angular, rng)}
	}

	return &Forest{Trees: trees, LeafSize: leafSize}, nil
}

func buildNode(data *sparse.Dense, idx []int32, leafSize int, angular bool, rng *rand.Rand) *node {
	if len(idx) <= leafSize {
		leaf := make([]int32, len(idx))
		copy(leaf, idx)

		return &node{indices: leaf}
	}

	normal, offset := chooseHyperplane(data, idx, angular, rng)

	var left, right []int32
	for _, i := range idx {
		row, _ := data.RowView(int(i))
		if dot(row, normal)-offset > 0 {
			right = append(right, i)
		} else {
			left = append(left, i)
		}
	}

	// A degenerate pair (or numerically flat split) can push every point to
	// one side; fall back to an even index split so the recursion still
	// terminates in O(log n) depth.
	if len(left) == 0 || len(right) == 0 {
		mid := len(idx) / 2
		left = append([]int32(nil), idx[:mid]...)
		right = append([]int32(nil), idx[mid:]...)
	}

	return &node{
		normal: normal,
		offset: offset,
		left:   buildNode(data, left, leafSize, angular, rng),
		right:  buildNode(data, right, leafSize, angular, rng),
	}
}

func chooseHyperplane(data *sparse.Dense, idx []int32, angular bool, rng *rand.Rand) (normal []float64, offset float64) {
	i1 := idx[rng.Intn(len(idx))]
	i2 := idx[rng.Intn(len(idx))]
	for i2 == i1 && len(idx) > 1 {
		i2 = idx[rng.Intn(len(idx))]
	}
	p1, _ := data.RowView(int(i1))
	p2, _ := data.RowView(int(i2))
	dim := len(p1)

	if angular {
		n1 := normalizeVec(p1)
		n2 := normalizeVec(p2)
		normal = make([]float64, dim)
		for d := 0; d < dim; d++ {
			normal[d] = n1[d] - n2[d]
		}

		return normal, 0
	}

	normal = make([]float64, dim)
	midpoint := make([]float64, dim)
	for d := 0; d < dim; d++ {
		normal[d] = p2[d] - p1[d]
		midpoint[d] = (p1[d] + p2[d]) / 2
	}
	offset = dot(midpoint, normal)

	return normal, offset
}

func normalizeVec(v []float64) []float64 {
	out := make([]float64, len(v))
	var sumSq float64
	for _, x := range v {
		sumSq += x * x
	}
	norm := math.Sqrt(sumSq)
	if norm == 0 {
		copy(out, v)

		return out
	}
	for i, x := range v {
		out[i] = x / norm
	}

	return out
}

func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}

	return s
}

// Flatten encodes t into an array-based FlatTree suitable for SearchFlatTree.
func (t *Tree) Flatten() *FlatTree {
	ft := &FlatTree{}
	flattenRec(t.root, ft)

	return ft
}

func flattenRec(n *node, ft *FlatTree) int32 {
	id := int32(len(ft.Hyperplanes))

	if n.indices != nil {
		start := int32(len(ft.Indices))
		ft.Indices = append(ft.Indices, n.indices...)
		end := int32(len(ft.Indices))
		ft.Hyperplanes = append(ft.Hyperplanes, nil)
		ft.Offsets = append(ft.Offsets, 0)
		ft.Children = append(ft.Children, [2]int32{-(start + 1), -(end + 1)})

		return id
	}

	ft.Hyperplanes = append(ft.Hyperplanes, n.normal)
	ft.Offsets = append(ft.Offsets, n.offset)
	ft.Children = append(ft.Children, [2]int32{0, 0})

	leftID := flattenRec(n.left, ft)
	rightID := flattenRec(n.right, ft)
	ft.Children[id] = [2]int32{leftID, rightID}

	return id
}

// SearchFlatTree routes query down t from the root, breaking ties on an
// exactly-zero margin with rng, and returns the [lo, hi) range of t.Indices
// that forms the leaf bucket query landed in.
func SearchFlatTree(query []float64, t *FlatTree, rng *rand.Rand) (lo, hi int32) {
	id := int32(0)
	for {
		children := t.Children[id]
		if children[0] < 0 {
			return -children[0] - 1, -children[1] - 1
		}

		normal := t.Hyperplanes[id]
		margin := dot(query, normal) - t.Offsets[id]

		goRight := margin > 0
		if margin == 0 {
			goRight = rng.Float64() < 0.5
		}
		if goRight {
			id = children[1]
		} else {
			id = children[0]
		}
	}
}

// LeafArray collects every leaf bucket across every tree in f, padding each
// to the widest bucket with -1 so the result is a rectangular [][]int32
// ready to seed nearest-neighbor descent's candidate lists.
func LeafArray(f *Forest) [][]int32 {
	var leaves [][]int32
	maxLen := 0
	for _, tree := range f.Trees {
		treeLeaves := collectLeaves(tree.root)
		for _, l := range treeLeaves {
			if len(l) > maxLen {
				maxLen = len(l)
			}
		}
		leaves = append(leaves, treeLeaves...)
	}

	out := make([][]int32, len(leaves))
	for i, l := range leaves {
		row := make([]int32, maxLen)
		for j := range row {
			row[j] = -1
		}
		copy(row, l)
		out[i] = row
	}

	return out
}

func collectLeaves(n *node) [][]int32 {
	if n.indices != nil {
		return [][]int32{n.indices}
	}

	return append(collectLeaves(n.left), collectLeaves(n.right)...)
}
