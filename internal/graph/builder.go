// Package graph builds the conflict graph consumed by the coloring phase.
// Nodes are section crn; edges connect sections that share a student or an
// instructor. It is built on top of katalvlaran/lvlath's general-purpose
// weighted graph rather than a hand-rolled adjacency map.
package graph

import (
	"sort"

	lvlath "github.com/katalvlaran/lvlath/core"

	"examsched/internal/domain"
)

// sentinelWeight forces DSATUR to treat merge-group siblings as adjacent
// during coloring: the post-coloring merge pass then overwrites their
// colors back to one value, so the edge's job is only to exclude each
// sibling from the other's color class while the greedy pass runs.
const sentinelWeight int64 = 1 << 30

// Build constructs the conflict graph for dataset, honoring merges. The
// vertex set is exactly the dataset's crn set; edge weight accumulates one
// per shared student, one per shared instructor, then is bumped to at
// least sentinelWeight for every pair inside a merge group.
//
// lvlath's AddEdge is not idempotent across repeated calls for the same
// pair (a second call on a non-multigraph returns ErrMultiEdgeNotAllowed),
// so weights are accumulated in a side table and each pair's edge is added
// to the lvlath graph exactly once, with its final weight.
func Build(dataset *domain.SchedulingDataset, merges map[string]domain.MergeGroup) (*lvlath.Graph, error) {
	g := lvlath.NewGraph(lvlath.WithWeighted())

	crns := dataset.SortedCrns()
	for _, crn := range crns {
		if err := g.AddVertex(crn); err != nil {
			return nil, err
		}
	}

	weights := make(map[pair]int64)

	addPairsSharing := func(bySection map[string]map[string]struct{}) {
		entitySections := make(map[string][]string)
		for _, crn := range crns {
			for entity := range bySection[crn] {
				entitySections[entity] = append(entitySections[entity], crn)
			}
		}
		for _, sections := range entitySections {
			sort.Strings(sections)
			for i := 0; i < len(sections); i++ {
				for j := i + 1; j < len(sections); j++ {
					weights[makePair(sections[i], sections[j])]++
				}
			}
		}
	}

	addPairsSharing(dataset.StudentsBySection)
	addPairsSharing(dataset.InstructorsBySection)

	for _, id := range sortedMergeIDs(merges) {
		group := merges[id]
		members := make([]string, 0, len(group.Members))
		for _, crn := range group.Members {
			if _, ok := dataset.Sections[crn]; ok {
				members = append(members, crn)
			}
		}
		sort.Strings(members)
		for i := 0; i < len(members); i++ {
			for j := i + 1; j < len(members); j++ {
				p := makePair(members[i], members[j])
				if weights[p] < sentinelWeight {
					weights[p] = sentinelWeight
				}
			}
		}
	}

	pairs := make([]pair, 0, len(weights))
	for p := range weights {
		pairs = append(pairs, p)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].a != pairs[j].a {
			return pairs[i].a < pairs[j].a
		}
		return pairs[i].b < pairs[j].b
	})

	for _, p := range pairs {
		if _, err := g.AddEdge(p.a, p.b, weights[p]); err != nil {
			return nil, err
		}
	}

	return g, nil
}

type pair struct{ a, b string }

func makePair(a, b string) pair {
	if a < b {
		return pair{a, b}
	}
	return pair{b, a}
}

func sortedMergeIDs(merges map[string]domain.MergeGroup) []string {
	ids := make([]string, 0, len(merges))
	for id := range merges {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
