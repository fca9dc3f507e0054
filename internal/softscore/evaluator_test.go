package softscore

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"examsched/internal/domain"
	"examsched/internal/state"
)

func baseParams() domain.SchedulingParams {
	return domain.SchedulingParams{
		WLargeLate:     10,
		WB2BStudent:    5,
		WB2BInstructor: 3,
	}
}

func TestTuple_LessIsLexicographic(t *testing.T) {
	a := Tuple{LargeCourseLate: 0, SlotSeatLoad: 100}
	b := Tuple{LargeCourseLate: 1, SlotSeatLoad: 0}
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
}

func TestEvaluate_LargeCourseLatenessScalesWithDay(t *testing.T) {
	st := state.New()
	params := baseParams()

	early := Evaluate(st, 150, nil, nil, domain.Slot{Day: 0, Block: 0}, params)
	late := Evaluate(st, 150, nil, nil, domain.Slot{Day: domain.EarlyWeekCutoff, Block: 0}, params)

	assert.Equal(t, 0, early.LargeCourseLate)
	assert.Greater(t, late.LargeCourseLate, 0)
}

func TestEvaluate_SmallCourseNeverPenalizedForLateness(t *testing.T) {
	st := state.New()
	params := baseParams()
	tup := Evaluate(st, 10, nil, nil, domain.Slot{Day: 6, Block: 0}, params)
	assert.Equal(t, 0, tup.LargeCourseLate)
}

func TestEvaluate_BackToBackStudentDetected(t *testing.T) {
	st := state.New()
	st.Place("A", domain.Slot{Day: 0, Block: 0}, 10, []string{"s1"}, nil)

	params := baseParams()
	tup := Evaluate(st, 10, []string{"s1"}, nil, domain.Slot{Day: 0, Block: 1}, params)
	assert.Equal(t, params.WB2BStudent, tup.BackToBackStudents)
}

func TestEvaluate_NonAdjacentBlockNotBackToBack(t *testing.T) {
	st := state.New()
	st.Place("A", domain.Slot{Day: 0, Block: 0}, 10, []string{"s1"}, nil)

	params := baseParams()
	tup := Evaluate(st, 10, []string{"s1"}, nil, domain.Slot{Day: 0, Block: 3}, params)
	assert.Equal(t, 0, tup.BackToBackStudents)
}

func TestEvaluate_SlotSeatLoadAndExamCountReflectState(t *testing.T) {
	st := state.New()
	st.Place("A", domain.Slot{Day: 0, Block: 0}, 40, nil, nil)
	st.Place("B", domain.Slot{Day: 0, Block: 0}, 20, nil, nil)

	params := baseParams()
	tup := Evaluate(st, 10, nil, nil, domain.Slot{Day: 0, Block: 0}, params)
	assert.Equal(t, 60, tup.SlotSeatLoad)
	assert.Equal(t, 2, tup.SlotExamCount)
}

func TestEvaluate_InstructorLoadAccumulatesAcrossInstructors(t *testing.T) {
	st := state.New()
	st.Place("A", domain.Slot{Day: 0, Block: 0}, 10, nil, []string{"prof1"})
	st.Place("B", domain.Slot{Day: 0, Block: 1}, 10, nil, []string{"prof2"})

	params := baseParams()
	tup := Evaluate(st, 10, nil, []string{"prof1", "prof2"}, domain.Slot{Day: 0, Block: 2}, params)
	assert.Equal(t, 2, tup.InstructorLoad)
}
