// Package repair implements the optional, disabled-by-default local-repair
// post-phase: for each recorded student back-to-back pair, try moving the later
// section to a zero-hard-conflict slot with strictly lower soft penalty.
// It is never invoked from the main scheduling pipeline; a host opts in
// explicitly by calling Run after schedule.Scheduler.Run.
package repair

import (
	"sort"

	"examsched/internal/analyzer"
	"examsched/internal/conflict"
	"examsched/internal/domain"
	"examsched/internal/softscore"
	"examsched/internal/state"
)

// Params configures the repair pass. Enabled must be true for Run to do
// anything; a disabled Params is a documented no-op rather than a silent
// short-circuit.
type Params struct {
	Enabled    bool
	MaxMoves   int
	Scheduling domain.SchedulingParams
}

// Run attempts to reduce back-to-back penalties recorded by a prior
// analyzer.Analyze call, moving at most MaxMoves sections. It rebuilds a
// fresh SchedulingState from result's final assignments, then for each
// student back-to-back record (in the analyzer's stable order) tries to
// relocate the later of the two colliding sections. A move is accepted only
// if the new slot has no hard conflict and strictly decreases the
// soft-penalty tuple; otherwise the section keeps its slot.
func Run(result *domain.ScheduleResult, dataset *domain.SchedulingDataset, merges map[string]domain.MergeGroup, params Params) *domain.ScheduleResult {
	if !params.Enabled {
		return result
	}

	st := rebuildState(result, dataset)
	slotCrns := slotToCrns(result.Assignments)
	moves := 0

	analysis := analyzer.Analyze(result, dataset, merges, params.Scheduling)
	candidates := pickCandidates(analysis, slotCrns, dataset.StudentsBySection)

	for _, crn := range candidates {
		if moves >= params.MaxMoves {
			break
		}
		if tryMove(result, dataset, st, crn, params.Scheduling) {
			moves++
		}
	}

	return result
}

// pickCandidates maps each student back-to-back record onto the crn
// assigned to the later of its two consecutive blocks, deduplicated.
// Instructor back-to-back records are not used.
func pickCandidates(a domain.ScheduleAnalysis, slotCrns map[domain.Slot][]string, studentsBySection map[string]map[string]struct{}) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, rec := range a.BackToBackStudents {
		laterBlock := -1
		for i := 1; i < len(rec.Blocks); i++ {
			if rec.Blocks[i] == rec.Blocks[i-1]+1 {
				laterBlock = rec.Blocks[i]
				break
			}
		}
		if laterBlock < 0 {
			continue
		}
		slot := domain.Slot{Day: rec.Day, Block: laterBlock}
		for _, crn := range slotCrns[slot] {
			if _, enrolled := studentsBySection[crn][rec.EntityID]; !enrolled {
				continue
			}
			if _, ok := seen[crn]; ok {
				continue
			}
			seen[crn] = struct{}{}
			out = append(out, crn)
		}
	}
	sort.Strings(out)
	return out
}

func slotToCrns(assignments map[string]domain.Slot) map[domain.Slot][]string {
	out := make(map[domain.Slot][]string)
	for crn, slot := range assignments {
		out[slot] = append(out[slot], crn)
	}
	for slot := range out {
		sort.Strings(out[slot])
	}
	return out
}

func rebuildState(result *domain.ScheduleResult, dataset *domain.SchedulingDataset) *state.SchedulingState {
	st := state.New()
	crns := make([]string, 0, len(result.Assignments))
	for crn := range result.Assignments {
		crns = append(crns, crn)
	}
	sort.Strings(crns)

	for _, crn := range crns {
		slot := result.Assignments[crn]
		sec := dataset.Sections[crn]
		students := make([]string, 0, len(dataset.StudentsBySection[crn]))
		for s := range dataset.StudentsBySection[crn] {
			students = append(students, s)
		}
		instructors := make([]string, 0, len(dataset.InstructorsBySection[crn]))
		for i := range dataset.InstructorsBySection[crn] {
			instructors = append(instructors, i)
		}
		st.Place(crn, slot, sec.Enrollment, students, instructors)
	}
	return st
}

func tryMove(result *domain.ScheduleResult, dataset *domain.SchedulingDataset, st *state.SchedulingState, crn string, params domain.SchedulingParams) bool {
	current := result.Assignments[crn]
	sec, ok := dataset.Sections[crn]
	if !ok {
		return false
	}
	students := keysOf(dataset.StudentsBySection[crn])
	instructors := keysOf(dataset.InstructorsBySection[crn])

	currentSoft := softscore.Evaluate(st, sec.Enrollment, students, instructors, current, params)

	for d := 0; d < params.MaxDays; d++ {
		for b := 0; b < domain.BlocksPerDay; b++ {
			cand := domain.Slot{Day: d, Block: b}
			if cand == current {
				continue
			}
			hard := len(conflict.Detect(dataset, st, crn, students, instructors, cand, params))
			if hard > 0 {
				continue
			}
			soft := softscore.Evaluate(st, sec.Enrollment, students, instructors, cand, params)
			if soft.Less(currentSoft) {
				result.Assignments[crn] = cand
				return true
			}
		}
	}
	return false
}

func keysOf(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
