// Package conflict enumerates hard-constraint violations for a candidate
// placement. It is used by the slot assigner (diagnostic log, in placement
// order) and by the repair pass; the analyzer recomputes violations from
// the final assignment on its own and does not call it.
package conflict

import (
	"sort"

	"examsched/internal/domain"
	"examsched/internal/state"
)

// Detect enumerates every hard-constraint violation that placing crn at
// slot would produce, given st. students and instructors are the full set
// involved in this placement — for a merge group, the union across every
// member, not just the representative crn — mirroring how
// softscore.Evaluate is called. Multiple distinct entities can each
// contribute an independent record; duplicate kinds for the same entity
// are not deduplicated.
func Detect(dataset *domain.SchedulingDataset, st *state.SchedulingState, crn string, students, instructors []string, slot domain.Slot, params domain.SchedulingParams) []domain.Conflict {
	var out []domain.Conflict

	students = sortedCopy(students)
	for _, studentID := range students {
		existingBlocks := st.StudentBlocksOnDay(studentID, slot.Day)
		if _, already := existingBlocks[slot.Block]; already {
			out = append(out, domain.Conflict{
				Kind:           domain.ConflictStudentDoubleBook,
				EntityID:       studentID,
				Crn:            crn,
				ConflictingCrn: findCrnAtSlot(st, slot, studentID, dataset.StudentsBySection),
				Day:            slot.Day,
				Block:          slot.Block,
			})
		}
		if st.StudentCountOnDay(studentID, slot.Day) >= params.StudentMaxPerDay {
			out = append(out, domain.Conflict{
				Kind:     domain.ConflictStudentGtMaxPerDay,
				EntityID: studentID,
				Crn:      crn,
				Day:      slot.Day,
				Block:    slot.Block,
			})
		}
	}

	instructors = sortedCopy(instructors)
	for _, name := range instructors {
		existingBlocks := st.InstructorBlocksOnDay(name, slot.Day)
		if _, already := existingBlocks[slot.Block]; already {
			out = append(out, domain.Conflict{
				Kind:           domain.ConflictInstructorDoubleBook,
				EntityID:       name,
				Crn:            crn,
				ConflictingCrn: findCrnAtSlot(st, slot, name, dataset.InstructorsBySection),
				Day:            slot.Day,
				Block:          slot.Block,
			})
		}
		if st.InstructorCountOnDay(name, slot.Day) >= params.InstructorMaxPerDay {
			out = append(out, domain.Conflict{
				Kind:     domain.ConflictInstructorGtMaxPerDay,
				EntityID: name,
				Crn:      crn,
				Day:      slot.Day,
				Block:    slot.Block,
			})
		}
	}

	return out
}

// findCrnAtSlot looks up the crn already placed at slot that also involves
// entityID, per entity's membership map.
func findCrnAtSlot(st *state.SchedulingState, slot domain.Slot, entityID string, bySection map[string]map[string]struct{}) string {
	for _, other := range st.SlotToCrns[slot] {
		if _, ok := bySection[other][entityID]; ok {
			return other
		}
	}
	return ""
}

// sortedCopy returns a sorted copy of in, so callers can pass whatever
// order they have on hand without Detect's output order depending on it.
func sortedCopy(in []string) []string {
	out := append([]string(nil), in...)
	sort.Strings(out)
	return out
}
