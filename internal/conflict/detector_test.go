package conflict

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"examsched/internal/domain"
	"examsched/internal/state"
)

func newDataset(sections map[string]domain.Section, students map[string]domain.Student) *domain.SchedulingDataset {
	return domain.NewSchedulingDataset(sections, students, nil)
}

func studentsOf(dataset *domain.SchedulingDataset, crn string) []string {
	out := make([]string, 0, len(dataset.StudentsBySection[crn]))
	for s := range dataset.StudentsBySection[crn] {
		out = append(out, s)
	}
	return out
}

func instructorsOf(dataset *domain.SchedulingDataset, crn string) []string {
	out := make([]string, 0, len(dataset.InstructorsBySection[crn]))
	for i := range dataset.InstructorsBySection[crn] {
		out = append(out, i)
	}
	return out
}

func TestDetect_NoConflictsOnFreshSlot(t *testing.T) {
	dataset := newDataset(
		map[string]domain.Section{"A": {Crn: "A", Enrollment: 10}},
		map[string]domain.Student{"s1": {StudentID: "s1", EnrolledSection: []string{"A"}}},
	)
	st := state.New()
	params := domain.SchedulingParams{StudentMaxPerDay: 2, InstructorMaxPerDay: 2}

	conflicts := Detect(dataset, st, "A", studentsOf(dataset, "A"), instructorsOf(dataset, "A"), domain.Slot{Day: 0, Block: 0}, params)
	assert.Empty(t, conflicts)
}

func TestDetect_StudentDoubleBook(t *testing.T) {
	dataset := newDataset(
		map[string]domain.Section{
			"A": {Crn: "A", Enrollment: 10},
			"B": {Crn: "B", Enrollment: 10},
		},
		map[string]domain.Student{"s1": {StudentID: "s1", EnrolledSection: []string{"A", "B"}}},
	)
	st := state.New()
	st.Place("A", domain.Slot{Day: 0, Block: 0}, 10, []string{"s1"}, nil)
	params := domain.SchedulingParams{StudentMaxPerDay: 5, InstructorMaxPerDay: 5}

	conflicts := Detect(dataset, st, "B", studentsOf(dataset, "B"), instructorsOf(dataset, "B"), domain.Slot{Day: 0, Block: 0}, params)
	require := assert.New(t)
	require.Len(conflicts, 1)
	require.Equal(domain.ConflictStudentDoubleBook, conflicts[0].Kind)
	require.Equal("A", conflicts[0].ConflictingCrn)
}

func TestDetect_StudentOverMaxPerDay(t *testing.T) {
	dataset := newDataset(
		map[string]domain.Section{
			"A": {Crn: "A", Enrollment: 10},
			"B": {Crn: "B", Enrollment: 10},
		},
		map[string]domain.Student{"s1": {StudentID: "s1", EnrolledSection: []string{"A", "B"}}},
	)
	st := state.New()
	st.Place("A", domain.Slot{Day: 0, Block: 0}, 10, []string{"s1"}, nil)
	params := domain.SchedulingParams{StudentMaxPerDay: 1, InstructorMaxPerDay: 5}

	conflicts := Detect(dataset, st, "B", studentsOf(dataset, "B"), instructorsOf(dataset, "B"), domain.Slot{Day: 0, Block: 1}, params)
	found := false
	for _, c := range conflicts {
		if c.Kind == domain.ConflictStudentGtMaxPerDay {
			found = true
		}
	}
	assert.True(t, found)
}

func TestDetect_InstructorDoubleBook(t *testing.T) {
	dataset := newDataset(
		map[string]domain.Section{
			"A": {Crn: "A", Enrollment: 10, Instructors: []string{"prof1"}},
			"B": {Crn: "B", Enrollment: 10, Instructors: []string{"prof1"}},
		},
		nil,
	)
	st := state.New()
	st.Place("A", domain.Slot{Day: 0, Block: 0}, 10, nil, []string{"prof1"})
	params := domain.SchedulingParams{StudentMaxPerDay: 5, InstructorMaxPerDay: 5}

	conflicts := Detect(dataset, st, "B", studentsOf(dataset, "B"), instructorsOf(dataset, "B"), domain.Slot{Day: 0, Block: 0}, params)
	found := false
	for _, c := range conflicts {
		if c.Kind == domain.ConflictInstructorDoubleBook {
			found = true
		}
	}
	assert.True(t, found)
}

func TestDetect_MultipleStudentsEachProduceIndependentRecords(t *testing.T) {
	dataset := newDataset(
		map[string]domain.Section{
			"A": {Crn: "A", Enrollment: 10},
			"B": {Crn: "B", Enrollment: 10},
		},
		map[string]domain.Student{
			"s1": {StudentID: "s1", EnrolledSection: []string{"A", "B"}},
			"s2": {StudentID: "s2", EnrolledSection: []string{"A", "B"}},
		},
	)
	st := state.New()
	st.Place("A", domain.Slot{Day: 0, Block: 0}, 10, []string{"s1", "s2"}, nil)
	params := domain.SchedulingParams{StudentMaxPerDay: 5, InstructorMaxPerDay: 5}

	conflicts := Detect(dataset, st, "B", studentsOf(dataset, "B"), instructorsOf(dataset, "B"), domain.Slot{Day: 0, Block: 0}, params)
	assert.Len(t, conflicts, 2)
}
