// Package scheduler implements the slot-selection loop: for each section,
// in a stable color/size order, pick the slot minimizing
// (hard-conflict-count, soft-penalty-tuple, day, block).
package scheduler

import (
	"sort"

	"examsched/internal/conflict"
	"examsched/internal/domain"
	"examsched/internal/softscore"
	"examsched/internal/state"
)

// key is the full lexicographic sort key for one candidate slot.
type key struct {
	hardCount int
	soft      softscore.Tuple
	day       int
	block     int
}

func (k key) less(other key) bool {
	if k.hardCount != other.hardCount {
		return k.hardCount < other.hardCount
	}
	if k.soft != other.soft {
		return k.soft.Less(other.soft)
	}
	if k.day != other.day {
		return k.day < other.day
	}
	return k.block < other.block
}

// representative is one placement decision: a merge-group leader carries
// every group member along.
type representative struct {
	crn             string
	effectiveEnroll int
	members         []string // crn of this section plus merge siblings, sorted
	students        []string // union of students across members
	instructors     []string // union of instructors across members
}

// Assign places every section (one representative per merge group, solo
// sections standing for themselves) and returns the final assignments plus
// the placement-time conflict log. unscheduled lists merge-group IDs the
// MergeValidator has already flagged as over capacity; their members are
// skipped entirely.
func Assign(
	dataset *domain.SchedulingDataset,
	colors map[string]int,
	merges map[string]domain.MergeGroup,
	unscheduled map[string]struct{},
	params domain.SchedulingParams,
) (map[string]domain.Slot, []domain.Conflict, *state.SchedulingState) {

	crnToGroup := make(map[string]string, len(merges))
	for id, g := range merges {
		if _, skip := unscheduled[id]; skip {
			continue
		}
		for _, crn := range g.Members {
			crnToGroup[crn] = id
		}
	}

	reps := buildRepresentatives(dataset, merges, unscheduled, crnToGroup)
	order := orderRepresentatives(reps, colors, params)

	st := state.New()
	assignments := make(map[string]domain.Slot, len(dataset.Sections))
	var conflicts []domain.Conflict

	for _, rep := range order {
		best := bestSlot(dataset, st, rep, params)
		for _, crn := range rep.members {
			assignments[crn] = best
		}
		conflicts = append(conflicts, conflict.Detect(dataset, st, rep.crn, rep.students, rep.instructors, best, params)...)
		st.Place(rep.crn, best, rep.effectiveEnroll, rep.students, rep.instructors)
	}

	return assignments, conflicts, st
}

func buildRepresentatives(dataset *domain.SchedulingDataset, merges map[string]domain.MergeGroup, unscheduled map[string]struct{}, crnToGroup map[string]string) []representative {
	seenGroup := make(map[string]bool)
	var reps []representative

	for _, crn := range dataset.SortedCrns() {
		groupID, inGroup := crnToGroup[crn]
		if inGroup {
			if seenGroup[groupID] {
				continue
			}
			seenGroup[groupID] = true
			members := append([]string(nil), merges[groupID].Members...)
			sort.Strings(members)

			enroll := 0
			studentSet := make(map[string]struct{})
			instructorSet := make(map[string]struct{})
			for _, m := range members {
				sec, ok := dataset.Sections[m]
				if !ok {
					continue
				}
				enroll += sec.Enrollment
				for s := range dataset.StudentsBySection[m] {
					studentSet[s] = struct{}{}
				}
				for i := range dataset.InstructorsBySection[m] {
					instructorSet[i] = struct{}{}
				}
			}
			reps = append(reps, representative{
				crn:             members[0],
				effectiveEnroll: enroll,
				members:         members,
				students:        sortedSet(studentSet),
				instructors:     sortedSet(instructorSet),
			})
			continue
		}

		if inAnyUnscheduledGroup(crn, merges, unscheduled) {
			continue
		}

		sec := dataset.Sections[crn]
		reps = append(reps, representative{
			crn:             crn,
			effectiveEnroll: sec.Enrollment,
			members:         []string{crn},
			students:        sortedSet(dataset.StudentsBySection[crn]),
			instructors:     sortedSet(dataset.InstructorsBySection[crn]),
		})
	}

	return reps
}

func inAnyUnscheduledGroup(crn string, merges map[string]domain.MergeGroup, unscheduled map[string]struct{}) bool {
	for id := range unscheduled {
		for _, m := range merges[id].Members {
			if m == crn {
				return true
			}
		}
	}
	return false
}

func sortedSet(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// orderRepresentatives applies the §4.3 section-ordering rule: if
// PrioritizeLargeCourses, sort by descending effective enrollment (ties by
// crn); otherwise group by color, order colors by descending summed
// enrollment, and within a color order by descending enrollment (ties by
// crn).
func orderRepresentatives(reps []representative, colors map[string]int, params domain.SchedulingParams) []representative {
	out := append([]representative(nil), reps...)

	if params.PrioritizeLargeCourses {
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].effectiveEnroll != out[j].effectiveEnroll {
				return out[i].effectiveEnroll > out[j].effectiveEnroll
			}
			return out[i].crn < out[j].crn
		})
		return out
	}

	colorWeight := make(map[int]int)
	for _, r := range out {
		colorWeight[colors[r.crn]] += r.effectiveEnroll
	}

	sort.SliceStable(out, func(i, j int) bool {
		ci, cj := colors[out[i].crn], colors[out[j].crn]
		if colorWeight[ci] != colorWeight[cj] {
			return colorWeight[ci] > colorWeight[cj]
		}
		if ci != cj {
			return ci < cj
		}
		if out[i].effectiveEnroll != out[j].effectiveEnroll {
			return out[i].effectiveEnroll > out[j].effectiveEnroll
		}
		return out[i].crn < out[j].crn
	})
	return out
}

// bestSlot scans the full candidate grid and returns the slot with the
// lexicographically smallest key.
func bestSlot(dataset *domain.SchedulingDataset, st *state.SchedulingState, rep representative, params domain.SchedulingParams) domain.Slot {
	var bestSlot domain.Slot
	var bestKey key
	first := true

	for d := 0; d < params.MaxDays; d++ {
		for b := 0; b < domain.BlocksPerDay; b++ {
			slot := domain.Slot{Day: d, Block: b}
			hard := len(conflict.Detect(dataset, st, rep.crn, rep.students, rep.instructors, slot, params))
			soft := softscore.Evaluate(st, rep.effectiveEnroll, rep.students, rep.instructors, slot, params)
			k := key{hardCount: hard, soft: soft, day: d, block: b}

			if first || k.less(bestKey) {
				bestKey = k
				bestSlot = slot
				first = false
			}
		}
	}
	return bestSlot
}
