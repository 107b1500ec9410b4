// Package clustering partitions headline indices by cosine similarity over
// their embeddings.
package clustering

import (
	"fmt"
)

// Group partitions indices {0..n-1} into clusters. Indices are processed in
// input order: each unvisited index seeds a group, then the group absorbs any
// unvisited index whose similarity to any current member reaches the
// threshold, repeated to a fixed point. The chaining is intentional
// single-linkage behavior: a-b-c merge even when a and c are dissimilar.
// Groups below minSize are discarded and their members, like every other
// ungrouped index, come back as singleton clusters, so the union of all
// returned members is always exactly {0..n-1}.
func Group(embeddings [][]float64, threshold float64, minSize int) ([][]int, error) {
	if threshold <= 0 || threshold >= 1 {
		return nil, fmt.Errorf("similarity threshold %v outside (0,1)", threshold)
	}
	if minSize < 1 {
		return nil, fmt.Errorf("min cluster size %d below 1", minSize)
	}

	n := len(embeddings)
	if n == 0 {
		return [][]int{}, nil
	}

	sims := similarityMatrix(embeddings)

	visited := make([]bool, n)
	clustered := make([]bool, n)
	var clusters [][]int

	for i := 0; i < n; i++ {
		if visited[i] {
			continue
		}
		group := []int{i}
		visited[i] = true

		for added := true; added; {
			added = false
			for j := 0; j < n; j++ {
				if visited[j] {
					continue
				}
				for _, k := range group {
					if sims[j][k] >= threshold {
						group = append(group, j)
						visited[j] = true
						added = true
						break
					}
				}
			}
		}

		if len(group) >= minSize {
			clusters = append(clusters, group)
			for _, idx := range group {
				clustered[idx] = true
			}
		}
	}

	// Leftovers become singletons so no article is silently dropped.
	for i := 0; i < n; i++ {
		if !clustered[i] {
			clusters = append(clusters, []int{i})
		}
	}

	return clusters, nil
}

func similarityMatrix(embeddings [][]float64) [][]float64 {
	n := len(embeddings)
	sims := make([][]float64, n)
	for i := range sims {
		sims[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			s := dot(embeddings[i], embeddings[j])
			sims[i][j] = s
			sims[j][i] = s
		}
	}
	return sims
}

func dot(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var sum float64
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}
