// Package coloring implements the DSATUR greedy coloring phase and the
// merge-group post-pass that forces every member of a merge group onto one
// color.
package coloring

import (
	"sort"

	lvlath "github.com/katalvlaran/lvlath/core"

	"examsched/internal/coreerrors"
	"examsched/internal/domain"
)

// Color runs DSATUR over g: at each step it picks the uncolored vertex with
// the most distinct colors already present among its neighbors, breaking
// ties by higher uncolored-neighbor degree, then by lexicographically
// smallest vertex ID (the stable key). It assigns the smallest
// non-negative integer not used by any colored neighbor.
//
// After coloring, every merge group's members have their colors
// overwritten with the group's most common color (ties toward the lower
// integer), guaranteeing invariant 3 ahead of slot assignment.
func Color(g *lvlath.Graph, merges map[string]domain.MergeGroup) (map[string]int, error) {
	ids := g.Vertices()
	if len(ids) == 0 {
		return nil, coreerrors.ProgrammerError("empty_graph", "coloring requested on a graph with no vertices")
	}
	sort.Strings(ids)

	neighborIDs := make(map[string][]string, len(ids))
	uncoloredDeg := make(map[string]int, len(ids))
	for _, id := range ids {
		n, err := g.NeighborIDs(id)
		if err != nil {
			return nil, err
		}
		neighborIDs[id] = n
		uncoloredDeg[id] = len(n)
	}

	colors := make(map[string]int, len(ids))
	colored := make(map[string]bool, len(ids))

	for len(colored) < len(ids) {
		next := pickNextVertex(ids, colored, colors, neighborIDs, uncoloredDeg)

		used := make(map[int]bool)
		for _, nb := range neighborIDs[next] {
			if c, ok := colors[nb]; ok {
				used[c] = true
			}
		}
		c := 0
		for used[c] {
			c++
		}
		colors[next] = c
		colored[next] = true

		for _, nb := range neighborIDs[next] {
			if !colored[nb] {
				uncoloredDeg[nb]--
			}
		}
	}

	applyMergeGroups(colors, merges)

	return colors, nil
}

// pickNextVertex selects the uncolored vertex with the highest saturation
// degree (distinct colors among neighbors), then highest uncolored-degree,
// then lexicographically smallest ID.
func pickNextVertex(ids []string, colored map[string]bool, colors map[string]int, neighborIDs map[string][]string, uncoloredDeg map[string]int) string {
	best := ""
	bestSat := -1
	bestDeg := -1

	for _, id := range ids {
		if colored[id] {
			continue
		}
		seen := make(map[int]bool)
		for _, nb := range neighborIDs[id] {
			if c, ok := colors[nb]; ok {
				seen[c] = true
			}
		}
		sat := len(seen)
		deg := uncoloredDeg[id]

		if sat > bestSat ||
			(sat == bestSat && deg > bestDeg) ||
			(sat == bestSat && deg == bestDeg && (best == "" || id < best)) {
			best = id
			bestSat = sat
			bestDeg = deg
		}
	}
	return best
}

// applyMergeGroups overwrites every member's color with the group's most
// common color, ties broken toward the lower integer.
func applyMergeGroups(colors map[string]int, merges map[string]domain.MergeGroup) {
	ids := make([]string, 0, len(merges))
	for id := range merges {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		group := merges[id]
		counts := make(map[int]int)
		for _, crn := range group.Members {
			if c, ok := colors[crn]; ok {
				counts[c]++
			}
		}
		if len(counts) == 0 {
			continue
		}
		best := -1
		bestCount := -1
		ordered := make([]int, 0, len(counts))
		for c := range counts {
			ordered = append(ordered, c)
		}
		sort.Ints(ordered)
		for _, c := range ordered {
			if counts[c] > bestCount {
				bestCount = counts[c]
				best = c
			}
		}
		for _, crn := range group.Members {
			if _, ok := colors[crn]; ok {
				colors[crn] = best
			}
		}
	}
}
