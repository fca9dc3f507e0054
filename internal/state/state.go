// Package state holds the single mutable object shared by the slot
// assignment and soft-scoring phases: per-student, per-instructor, and
// per-slot incremental bookkeeping. It is owned exclusively by one
// scheduling call and reset for every fresh run.
package state

import "examsched/internal/domain"

// SchedulingState grows monotonically during slot assignment. Nothing
// outside that phase should mutate it.
type SchedulingState struct {
	// SlotToCrns lists the crn placed at each slot, in placement order.
	SlotToCrns map[domain.Slot][]string

	// StudentDayBlocks maps (studentID, day) to the set of blocks
	// the student already holds that day.
	StudentDayBlocks map[string]map[int]map[int]struct{}

	// InstructorDayBlocks is the instructor analogue of StudentDayBlocks.
	InstructorDayBlocks map[string]map[int]map[int]struct{}

	// SlotSeatLoad is the running sum of enrollments placed at each slot.
	SlotSeatLoad map[domain.Slot]int

	// SlotExamCount is the running count of sections placed at each slot.
	SlotExamCount map[domain.Slot]int
}

// New returns an empty SchedulingState.
func New() *SchedulingState {
	return &SchedulingState{
		SlotToCrns:          make(map[domain.Slot][]string),
		StudentDayBlocks:    make(map[string]map[int]map[int]struct{}),
		InstructorDayBlocks: make(map[string]map[int]map[int]struct{}),
		SlotSeatLoad:        make(map[domain.Slot]int),
		SlotExamCount:       make(map[domain.Slot]int),
	}
}

// StudentBlocksOnDay returns the blocks the student already holds on day,
// or nil if none.
func (s *SchedulingState) StudentBlocksOnDay(studentID string, day int) map[int]struct{} {
	byDay, ok := s.StudentDayBlocks[studentID]
	if !ok {
		return nil
	}
	return byDay[day]
}

// InstructorBlocksOnDay is the instructor analogue of StudentBlocksOnDay.
func (s *SchedulingState) InstructorBlocksOnDay(instructor string, day int) map[int]struct{} {
	byDay, ok := s.InstructorDayBlocks[instructor]
	if !ok {
		return nil
	}
	return byDay[day]
}

// StudentCountOnDay returns how many sections the student already holds
// on day.
func (s *SchedulingState) StudentCountOnDay(studentID string, day int) int {
	return len(s.StudentBlocksOnDay(studentID, day))
}

// InstructorCountOnDay is the instructor analogue of StudentCountOnDay.
func (s *SchedulingState) InstructorCountOnDay(instructor string, day int) int {
	return len(s.InstructorBlocksOnDay(instructor, day))
}

// Place commits crn (with effective seat count seats) at slot, updating
// every bookkeeping structure for the given students and instructors.
func (s *SchedulingState) Place(crn string, slot domain.Slot, seats int, students, instructors []string) {
	s.SlotToCrns[slot] = append(s.SlotToCrns[slot], crn)
	s.SlotSeatLoad[slot] += seats
	s.SlotExamCount[slot]++

	for _, id := range students {
		byDay := s.StudentDayBlocks[id]
		if byDay == nil {
			byDay = make(map[int]map[int]struct{})
			s.StudentDayBlocks[id] = byDay
		}
		blocks := byDay[slot.Day]
		if blocks == nil {
			blocks = make(map[int]struct{})
			byDay[slot.Day] = blocks
		}
		blocks[slot.Block] = struct{}{}
	}

	for _, name := range instructors {
		byDay := s.InstructorDayBlocks[name]
		if byDay == nil {
			byDay = make(map[int]map[int]struct{})
			s.InstructorDayBlocks[name] = byDay
		}
		blocks := byDay[slot.Day]
		if blocks == nil {
			blocks = make(map[int]struct{})
			byDay[slot.Day] = blocks
		}
		blocks[slot.Block] = struct{}{}
	}
}
