package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"examsched/internal/domain"
)

func baseParams() domain.SchedulingParams {
	return domain.SchedulingParams{
		MaxDays:             5,
		StudentMaxPerDay:    2,
		InstructorMaxPerDay: 2,
	}
}

func TestAnalyze_DetectsStudentDoubleBook(t *testing.T) {
	sections := map[string]domain.Section{
		"A": {Crn: "A", Enrollment: 10},
		"B": {Crn: "B", Enrollment: 10},
	}
	students := map[string]domain.Student{
		"s1": {StudentID: "s1", EnrolledSection: []string{"A", "B"}},
	}
	dataset := domain.NewSchedulingDataset(sections, students, nil)

	result := domain.NewScheduleResult()
	result.Assignments["A"] = domain.Slot{Day: 0, Block: 0}
	result.Assignments["B"] = domain.Slot{Day: 0, Block: 0}

	a := Analyze(result, dataset, nil, baseParams())
	assert.Len(t, a.StudentDoubleBook, 1)
	assert.Equal(t, "s1", a.StudentDoubleBook[0].EntityID)
}

func TestAnalyze_DetectsOverCapPerDay(t *testing.T) {
	sections := map[string]domain.Section{
		"A": {Crn: "A", Enrollment: 10},
		"B": {Crn: "B", Enrollment: 10},
		"C": {Crn: "C", Enrollment: 10},
	}
	students := map[string]domain.Student{
		"s1": {StudentID: "s1", EnrolledSection: []string{"A", "B", "C"}},
	}
	dataset := domain.NewSchedulingDataset(sections, students, nil)

	result := domain.NewScheduleResult()
	result.Assignments["A"] = domain.Slot{Day: 0, Block: 0}
	result.Assignments["B"] = domain.Slot{Day: 0, Block: 1}
	result.Assignments["C"] = domain.Slot{Day: 0, Block: 2}

	a := Analyze(result, dataset, nil, baseParams())
	assert.Len(t, a.StudentGtMaxPerDay, 1)
	assert.Len(t, a.StudentGtMaxPerDay[0].Crns, 3)
}

func TestAnalyze_DetectsBackToBack(t *testing.T) {
	sections := map[string]domain.Section{
		"A": {Crn: "A", Enrollment: 10},
		"B": {Crn: "B", Enrollment: 10},
	}
	students := map[string]domain.Student{
		"s1": {StudentID: "s1", EnrolledSection: []string{"A", "B"}},
	}
	dataset := domain.NewSchedulingDataset(sections, students, nil)

	result := domain.NewScheduleResult()
	result.Assignments["A"] = domain.Slot{Day: 0, Block: 0}
	result.Assignments["B"] = domain.Slot{Day: 0, Block: 1}

	a := Analyze(result, dataset, nil, baseParams())
	assert.Len(t, a.BackToBackStudents, 1)
	assert.Equal(t, []int{0, 1}, a.BackToBackStudents[0].Blocks)
}

func TestAnalyze_DetectsLargeCourseLate(t *testing.T) {
	sections := map[string]domain.Section{
		"BIG": {Crn: "BIG", Enrollment: 150},
	}
	dataset := domain.NewSchedulingDataset(sections, nil, nil)

	result := domain.NewScheduleResult()
	result.Assignments["BIG"] = domain.Slot{Day: 4, Block: 0}

	a := Analyze(result, dataset, nil, baseParams())
	assert.Len(t, a.LargeCoursesNotEarly, 1)
	assert.Equal(t, "BIG", a.LargeCoursesNotEarly[0].Crn)
}

func TestAnalyze_CountsUnplacedFromUnscheduledMergeGroups(t *testing.T) {
	dataset := domain.NewSchedulingDataset(map[string]domain.Section{}, nil, nil)
	merges := map[string]domain.MergeGroup{
		"m1": {ID: "m1", Members: []string{"A", "B"}},
	}
	result := domain.NewScheduleResult()
	result.UnscheduledMerges["m1"] = struct{}{}

	a := Analyze(result, dataset, merges, baseParams())
	assert.Equal(t, 2, a.UnplacedExams)
}

func TestAnalyze_NoViolationsOnCleanSchedule(t *testing.T) {
	sections := map[string]domain.Section{
		"A": {Crn: "A", Enrollment: 10},
		"B": {Crn: "B", Enrollment: 10},
	}
	dataset := domain.NewSchedulingDataset(sections, nil, nil)

	result := domain.NewScheduleResult()
	result.Assignments["A"] = domain.Slot{Day: 0, Block: 0}
	result.Assignments["B"] = domain.Slot{Day: 1, Block: 0}

	a := Analyze(result, dataset, nil, baseParams())
	assert.Empty(t, a.StudentDoubleBook)
	assert.Empty(t, a.StudentGtMaxPerDay)
	assert.Empty(t, a.BackToBackStudents)
	assert.Equal(t, 2, a.NumClasses)
	assert.Equal(t, 2, a.SlotsUsed)
}
