// Package clusters groups near-duplicate documents by SimHash distance.
// It implements the four-phase pipeline from the original ClustersBuilder:
// an exact dedup-by-bit-drop pass, a rotate-window similarity search, a
// greedy (non-connected-components) clustering pass, and a final merge of
// the bit-drop duplicates back into their representative's cluster.
package clusters

import (
	"math/bits"
	"sort"

	"github.com/sitecrawl/sitecrawl/internal/simhash"
)

const (
	rotateWindow   = 20
	rotateStep     = 8
	rotatePasses   = 64 / rotateStep
	sizeRatioLimit = 1.25
)

type doc struct {
	id      int
	simhash uint64
	size    int
}

// Result is the full output of the clustering pipeline.
type Result struct {
	// Clusters is the list of clusters, each a list of document ids,
	// sorted by cluster size descending.
	Clusters [][]int
	// DistanceHistogram maps a Hamming distance to the number of compared
	// pairs that measured at it, a side-output of Phase B.
	DistanceHistogram map[int]int
}

// Build runs the full pipeline over docs. k is the maximum Hamming
// distance, in bits, at which two documents are still considered similar.
func Build(docs []simhash.DocumentInfo, k int) Result {
	working := make([]doc, len(docs))
	for i, d := range docs {
		working[i] = doc{id: d.ID, simhash: uint64(d.Simhash), size: d.Size}
	}
	working, sameSimhashes, order := dedupByDroppedBit(working)
	adjacency, histogram := rotateWindowSimilarity(working, k)
	clusterOf, clusterList := greedyCluster(working, adjacency)
	clusterList = mergeDuplicates(clusterList, clusterOf, sameSimhashes, order)

	sort.Slice(clusterList, func(i, j int) bool {
		return len(clusterList[i]) > len(clusterList[j])
	})

	return Result{Clusters: clusterList, DistanceHistogram: histogram}
}

// dedupByDroppedBit is Phase A. For each bit position from 63 down to 0 it
// groups documents whose SimHash is equal once that bit is cleared, keeps
// the first of each group as representative and records the rest as
// duplicates of it. order records, pass by pass, every representative that
// gained duplicates in that pass (a representative may appear more than
// once), needed to merge them back correctly in Phase D.
func dedupByDroppedBit(working []doc) ([]doc, map[int][]int, []int) {
	sameSimhashes := make(map[int][]int)
	var order []int

	for b := 63; b >= 0; b-- {
		mask := uint64(1) << uint(b)
		sort.SliceStable(working, func(i, j int) bool {
			return (working[i].simhash &^ mask) < (working[j].simhash &^ mask)
		})

		var reps []doc
		i := 0
		for i < len(working) {
			j := i + 1
			key := working[i].simhash &^ mask
			for j < len(working) && (working[j].simhash&^mask) == key {
				j++
			}
			rep := working[i]
			reps = append(reps, rep)
			if j-i > 1 {
				order = append(order, rep.id)
				for _, dup := range working[i+1 : j] {
					sameSimhashes[rep.id] = append(sameSimhashes[rep.id], dup.id)
				}
			}
			i = j
		}
		working = reps
	}

	return working, sameSimhashes, order
}

// rotateWindowSimilarity is Phase B. Two documents are linked once their
// Hamming distance is at most k, the externally supplied similarity
// threshold; every rotation pass checks against the same k.
func rotateWindowSimilarity(working []doc, k int) (map[int][]int, map[int]int) {
	adjacency := make(map[int]map[int]struct{})
	compared := make(map[[2]int]struct{})
	histogram := make(map[int]int)

	addEdge := func(a, b int) {
		if adjacency[a] == nil {
			adjacency[a] = make(map[int]struct{})
		}
		if adjacency[b] == nil {
			adjacency[b] = make(map[int]struct{})
		}
		adjacency[a][b] = struct{}{}
		adjacency[b][a] = struct{}{}
	}

	for pass := 0; pass < rotatePasses; pass++ {
		rotation := uint(pass * rotateStep)
		sort.SliceStable(working, func(i, j int) bool {
			return bits.RotateLeft64(working[i].simhash, -int(rotation)) <
				bits.RotateLeft64(working[j].simhash, -int(rotation))
		})

		for i := range working {
			for j := i + 1; j < len(working) && j < i+rotateWindow; j++ {
				a, b := working[i], working[j]
				maxSize, minSize := a.size, b.size
				if minSize > maxSize {
					maxSize, minSize = minSize, maxSize
				}
				if minSize == 0 || float64(maxSize) > sizeRatioLimit*float64(minSize) {
					continue
				}

				distance := bits.OnesCount64(a.simhash ^ b.simhash)

				key := pairKey(a.id, b.id)
				if _, done := compared[key]; !done {
					compared[key] = struct{}{}
					histogram[distance]++
				}

				if distance <= k {
					addEdge(a.id, b.id)
				}
			}
		}
	}

	out := make(map[int][]int, len(adjacency))
	for id, neighbors := range adjacency {
		for n := range neighbors {
			out[id] = append(out[id], n)
		}
	}
	return out, histogram
}

func pairKey(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}

// greedyCluster is Phase C.
func greedyCluster(working []doc, adjacency map[int][]int) (map[int]int, [][]int) {
	degree := make(map[int]int, len(working))
	remaining := make(map[int]struct{}, len(working))
	for _, d := range working {
		degree[d.id] = len(adjacency[d.id])
		remaining[d.id] = struct{}{}
	}

	clusterOf := make(map[int]int)
	var clusters [][]int

	for len(remaining) > 0 {
		v := highestDegreeUnclustered(remaining, degree)
		delete(remaining, v)

		idx := len(clusters)
		cluster := []int{v}
		clusterOf[v] = idx

		for _, w := range adjacency[v] {
			if _, ok := remaining[w]; !ok {
				continue
			}
			cluster = append(cluster, w)
			delete(remaining, w)
			clusterOf[w] = idx
			for _, u := range adjacency[w] {
				if _, ok := remaining[u]; ok {
					degree[u]--
				}
			}
		}
		clusters = append(clusters, cluster)
	}

	return clusterOf, clusters
}

func highestDegreeUnclustered(remaining map[int]struct{}, degree map[int]int) int {
	best, bestDegree := -1, -1
	for id := range remaining {
		if d := degree[id]; d > bestDegree || (d == bestDegree && id > best) {
			best, bestDegree = id, d
		}
	}
	return best
}

// mergeDuplicates is Phase D: sameSimhashes is walked in reverse insertion
// order so that a representative absorbed by a later bit-drop pass is
// already assigned a cluster by the time an earlier pass's entry resolves
// it. Each representative's duplicates are merged once, at its last entry.
func mergeDuplicates(clusters [][]int, clusterOf map[int]int, sameSimhashes map[int][]int, order []int) [][]int {
	merged := make(map[int]bool, len(order))
	for i := len(order) - 1; i >= 0; i-- {
		rep := order[i]
		if merged[rep] {
			continue
		}
		merged[rep] = true
		idx, ok := clusterOf[rep]
		if !ok {
			continue
		}
		for _, dup := range sameSimhashes[rep] {
			clusters[idx] = append(clusters[idx], dup)
			clusterOf[dup] = idx
		}
	}
	return clusters
}
