package domain

import "sort"

// SchedulingDataset is the fully normalized input to the core. It is built
// once per scheduling call and never mutated afterward.
type SchedulingDataset struct {
	Sections map[string]Section
	Students map[string]Student
	Rooms    []Room

	// StudentsBySection and InstructorsBySection are canonical lookups;
	// every conflict check reads only from these, never from Sections
	// or Students directly.
	StudentsBySection    map[string]map[string]struct{}
	InstructorsBySection map[string]map[string]struct{}
}

// NewSchedulingDataset derives the canonical lookups from sections and
// students. Sections with zero enrollment must already have been removed
// by the caller (invariant 5); NewSchedulingDataset does not filter them.
func NewSchedulingDataset(sections map[string]Section, students map[string]Student, rooms []Room) *SchedulingDataset {
	ds := &SchedulingDataset{
		Sections:             sections,
		Students:             students,
		Rooms:                rooms,
		StudentsBySection:    make(map[string]map[string]struct{}),
		InstructorsBySection: make(map[string]map[string]struct{}),
	}

	for crn := range sections {
		ds.StudentsBySection[crn] = make(map[string]struct{})
	}
	for id, s := range students {
		for _, crn := range s.EnrolledSection {
			if _, ok := sections[crn]; !ok {
				continue
			}
			ds.StudentsBySection[crn][id] = struct{}{}
		}
	}

	for crn, sec := range sections {
		set := make(map[string]struct{}, len(sec.Instructors))
		for _, name := range sec.Instructors {
			set[name] = struct{}{}
		}
		ds.InstructorsBySection[crn] = set
	}

	return ds
}

// SortedCrns returns every crn in the dataset in lexicographic order, the
// stable ordering basis used throughout the core for determinism.
func (d *SchedulingDataset) SortedCrns() []string {
	out := make([]string, 0, len(d.Sections))
	for crn := range d.Sections {
		out = append(out, crn)
	}
	sort.Strings(out)
	return out
}

// MaxRoomCapacity returns the largest room capacity in the dataset, or 0 if
// there are no rooms.
func (d *SchedulingDataset) MaxRoomCapacity() int {
	max := 0
	for _, r := range d.Rooms {
		if r.Capacity > max {
			max = r.Capacity
		}
	}
	return max
}

// SchedulingParams is the immutable configuration for one scheduling call.
type SchedulingParams struct {
	MaxDays                int
	StudentMaxPerDay       int
	InstructorMaxPerDay    int
	WLargeLate             int
	WB2BStudent            int
	WB2BInstructor         int
	PrioritizeLargeCourses bool
}
