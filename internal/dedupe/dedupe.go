// Package dedupe groups items whose 64-bit perceptual hashes fall within a
// Hamming-distance threshold of each other, using a BK-tree so each item
// only probes its neighborhood instead of every earlier item.
package dedupe

import (
	"sort"

	"bktree"
	"bktree/distance"
)

type entry struct {
	hash uint64
	idx  int
}

// Groups partitions hashes into groups of indices connected (transitively)
// by pairwise distance <= threshold. Groups of fewer than two members are
// omitted. Each group's indices are ascending; groups are ordered by their
// first member.
func Groups(hashes []uint64, threshold int) [][]int {
	if len(hashes) < 2 {
		return nil
	}

	uf := newUnionFind(len(hashes))
	tree := bktree.New(func(a, b entry) int {
		return distance.Hamming(a.hash, b.hash)
	})

	for i, h := range hashes {
		// Union with every earlier item in range, then index this one.
		// Identical hashes collapse to one node in the tree, but the
		// query above already linked this index to that node's owner.
		for _, m := range tree.Find(entry{hash: h, idx: i}, threshold) {
			uf.union(i, m.Key.idx)
		}
		tree.Insert(entry{hash: h, idx: i})
	}

	groupMap := make(map[int][]int)
	for i := range hashes {
		root := uf.find(i)
		groupMap[root] = append(groupMap[root], i)
	}

	var groups [][]int
	for _, members := range groupMap {
		if len(members) < 2 {
			continue
		}
		sort.Ints(members)
		groups = append(groups, members)
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i][0] < groups[j][0]
	})
	return groups
}

// Union-Find data structure for efficient grouping
type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	parent := make([]int, n)
	rank := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	return &unionFind{parent: parent, rank: rank}
}

func (uf *unionFind) find(x int) int {
	if uf.parent[x] != x {
		uf.parent[x] = uf.find(uf.parent[x]) // Path compression
	}
	return uf.parent[x]
}

func (uf *unionFind) union(x, y int) {
	px, py := uf.find(x), uf.find(y)
	if px == py {
		return
	}
	// Union by rank
	if uf.rank[px] < uf.rank[py] {
		px, py = py, px
	}
	uf.parent[py] = px
	if uf.rank[px] == uf.rank[py] {
		uf.rank[px]++
	}
}
