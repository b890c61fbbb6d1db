package clusters

import (
	"testing"

	"github.com/sitecrawl/sitecrawl/internal/simhash"
)

func docsOf(hashes ...uint64) []simhash.DocumentInfo {
	docs := make([]simhash.DocumentInfo, len(hashes))
	for i, h := range hashes {
		docs[i] = simhash.DocumentInfo{ID: i, Simhash: simhash.Simhash(h), Size: 100}
	}
	return docs
}

func TestBuildClustersIdenticalHashesOneCluster(t *testing.T) {
	docs := docsOf(0x1234, 0x1234, 0x1234)
	result := Build(docs, 5)

	total := 0
	for _, c := range result.Clusters {
		total += len(c)
	}
	if total != 3 {
		t.Fatalf("total clustered docs = %d, want 3", total)
	}
	if len(result.Clusters) != 1 {
		t.Errorf("Clusters = %v, want a single cluster of size 3", result.Clusters)
	}
}

func TestBuildClustersDistinctHashesSingletons(t *testing.T) {
	docs := docsOf(0x0, 0xFFFFFFFFFFFFFFFF)
	result := Build(docs, 5)

	if len(result.Clusters) != 2 {
		t.Fatalf("Clusters = %v, want 2 singleton clusters", result.Clusters)
	}
}

func TestBuildClustersSortedBySizeDescending(t *testing.T) {
	docs := docsOf(0x1, 0x1, 0x1, 0x2, 0xFFFF)
	result := Build(docs, 5)

	for i := 1; i < len(result.Clusters); i++ {
		if len(result.Clusters[i]) > len(result.Clusters[i-1]) {
			t.Errorf("Clusters not sorted descending by size: %v", result.Clusters)
		}
	}
}

func TestBuildClustersRespectsBitsThreshold(t *testing.T) {
	// Hashes 3 bits apart (0b000 vs 0b111), sizes within the 1.25 ratio.
	docs := []simhash.DocumentInfo{
		{ID: 0, Simhash: 0x0, Size: 100},
		{ID: 1, Simhash: 0x7, Size: 110},
	}

	if result := Build(docs, 5); len(result.Clusters) != 1 {
		t.Errorf("Build(docs, 5).Clusters = %v, want a single cluster", result.Clusters)
	}
	if result := Build(docs, 2); len(result.Clusters) != 2 {
		t.Errorf("Build(docs, 2).Clusters = %v, want 2 singleton clusters", result.Clusters)
	}
}

func TestHighestDegreeUnclusteredPrefersHigherIDOnTie(t *testing.T) {
	remaining := map[int]struct{}{3: {}, 1: {}, 2: {}}
	degree := map[int]int{3: 0, 1: 0, 2: 0}
	if got := highestDegreeUnclustered(remaining, degree); got != 3 {
		t.Errorf("highestDegreeUnclustered() = %d, want 3", got)
	}
}
