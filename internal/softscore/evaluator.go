// Package softscore computes the soft-penalty tuple lexicographically
// minimized by the slot assigner. It only reads SchedulingState and
// dataset lookups; it never mutates.
package softscore

import (
	"examsched/internal/domain"
	"examsched/internal/state"
)

// Tuple is the six-element soft-penalty vector, in the order SlotAssigner
// appends to its sort key.
type Tuple struct {
	LargeCourseLate       int
	BackToBackStudents    int
	BackToBackInstructors int
	InstructorLoad        int
	SlotSeatLoad          int
	SlotExamCount         int
}

// Less reports whether t sorts strictly before other, element by element.
func (t Tuple) Less(other Tuple) bool {
	if t.LargeCourseLate != other.LargeCourseLate {
		return t.LargeCourseLate < other.LargeCourseLate
	}
	if t.BackToBackStudents != other.BackToBackStudents {
		return t.BackToBackStudents < other.BackToBackStudents
	}
	if t.BackToBackInstructors != other.BackToBackInstructors {
		return t.BackToBackInstructors < other.BackToBackInstructors
	}
	if t.InstructorLoad != other.InstructorLoad {
		return t.InstructorLoad < other.InstructorLoad
	}
	if t.SlotSeatLoad != other.SlotSeatLoad {
		return t.SlotSeatLoad < other.SlotSeatLoad
	}
	return t.SlotExamCount < other.SlotExamCount
}

// Evaluate computes the soft-penalty tuple for placing a section with the
// given enrollment, students and instructors at slot.
func Evaluate(st *state.SchedulingState, enrollment int, students, instructors []string, slot domain.Slot, params domain.SchedulingParams) Tuple {
	var t Tuple

	if enrollment >= domain.LargeCourseThreshold {
		lateness := slot.Day - domain.EarlyWeekCutoff + 1
		if lateness < 0 {
			lateness = 0
		}
		t.LargeCourseLate = lateness * params.WLargeLate
	}

	for _, studentID := range students {
		blocks := st.StudentBlocksOnDay(studentID, slot.Day)
		if hasNeighborBlock(blocks, slot.Block) {
			t.BackToBackStudents += params.WB2BStudent
		}
	}

	for _, name := range instructors {
		blocks := st.InstructorBlocksOnDay(name, slot.Day)
		if hasNeighborBlock(blocks, slot.Block) {
			t.BackToBackInstructors += params.WB2BInstructor
		}
		t.InstructorLoad += st.InstructorCountOnDay(name, slot.Day)
	}

	t.SlotSeatLoad = st.SlotSeatLoad[slot]
	t.SlotExamCount = st.SlotExamCount[slot]

	return t
}

func hasNeighborBlock(blocks map[int]struct{}, block int) bool {
	if blocks == nil {
		return false
	}
	if _, ok := blocks[block-1]; ok {
		return true
	}
	if _, ok := blocks[block+1]; ok {
		return true
	}
	return false
}
