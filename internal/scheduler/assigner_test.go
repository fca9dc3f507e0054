package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"examsched/internal/domain"
)

func baseParams() domain.SchedulingParams {
	return domain.SchedulingParams{
		MaxDays:             1,
		StudentMaxPerDay:    10,
		InstructorMaxPerDay: 10,
		WLargeLate:          10,
		WB2BStudent:         5,
		WB2BInstructor:      3,
	}
}

// A student enrolled only in the non-representative merge member (B, not
// the alphabetically-first representative A) must still be able to steer
// the group away from a slot that would double-book them.
func TestAssign_MergeGroupAvoidsConflictOnlyVisibleThroughNonRepresentativeMember(t *testing.T) {
	sections := map[string]domain.Section{
		"X": {Crn: "X", Enrollment: 50},
		"A": {Crn: "A", Enrollment: 10},
		"B": {Crn: "B", Enrollment: 10},
	}
	students := map[string]domain.Student{
		"s2": {StudentID: "s2", EnrolledSection: []string{"X", "B"}},
	}
	dataset := domain.NewSchedulingDataset(sections, students, nil)
	merges := map[string]domain.MergeGroup{
		"m1": {ID: "m1", Members: []string{"A", "B"}},
	}
	colors := map[string]int{"X": 0, "A": 1, "B": 1}

	assignments, _, _ := Assign(dataset, colors, merges, nil, baseParams())

	require.Equal(t, assignments["A"], assignments["B"])
	assert.NotEqual(t, assignments["X"], assignments["A"],
		"merge group should have avoided X's slot since B shares student s2 with X")
}

// When every slot is occupied by a section sharing a student with the
// non-representative merge member, the resulting hard conflict must be
// attributed correctly and show up in the returned conflict log — not be
// silently invisible because only the representative crn's own (empty)
// student set was checked.
func TestAssign_MergeGroupConflictViaNonRepresentativeMemberIsLogged(t *testing.T) {
	sections := map[string]domain.Section{
		"F0": {Crn: "F0", Enrollment: 90},
		"F1": {Crn: "F1", Enrollment: 90},
		"F2": {Crn: "F2", Enrollment: 90},
		"F3": {Crn: "F3", Enrollment: 90},
		"F4": {Crn: "F4", Enrollment: 90},
		"A":  {Crn: "A", Enrollment: 5},
		"B":  {Crn: "B", Enrollment: 5},
	}
	students := map[string]domain.Student{
		"s2": {StudentID: "s2", EnrolledSection: []string{"F0", "F1", "F2", "F3", "F4", "B"}},
	}
	dataset := domain.NewSchedulingDataset(sections, students, nil)
	merges := map[string]domain.MergeGroup{
		"m1": {ID: "m1", Members: []string{"A", "B"}},
	}
	colors := map[string]int{
		"F0": 0, "F1": 1, "F2": 2, "F3": 3, "F4": 4,
		"A": 5, "B": 5,
	}

	assignments, conflicts, _ := Assign(dataset, colors, merges, nil, baseParams())

	require.Equal(t, assignments["A"], assignments["B"])

	found := false
	for _, c := range conflicts {
		if c.Kind == domain.ConflictStudentDoubleBook && c.EntityID == "s2" && c.Crn == "A" {
			found = true
		}
	}
	assert.True(t, found, "conflict belonging to non-representative member B's student must be attributed to the group and logged")
}
