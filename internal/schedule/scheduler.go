// Package schedule wires the core's phases together: MergeValidator,
// ConflictGraphBuilder, Colorer, SlotAssigner, RoomAssigner. It performs no
// I/O; the caller supplies an already-normalized dataset and reads back a
// ScheduleResult.
package schedule

import (
	"go.uber.org/zap"

	"examsched/internal/coreerrors"
	"examsched/internal/domain"
	"examsched/internal/graph"
	"examsched/internal/merge"
	"examsched/internal/rooms"
	"examsched/internal/scheduler"

	"examsched/internal/coloring"
)

// Scheduler runs one scheduling call at a time. It holds no state between
// calls; every Run is a pure function of its arguments.
type Scheduler struct {
	log *zap.Logger
}

// New returns a Scheduler that logs phase summaries to log. A nil logger
// is replaced with zap's no-op logger.
func New(log *zap.Logger) *Scheduler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Scheduler{log: log}
}

// Run executes phases A through D and returns the ScheduleResult. It
// validates params and merge groups eagerly (InvalidInput) before doing
// any algorithmic work.
func (s *Scheduler) Run(dataset *domain.SchedulingDataset, merges map[string]domain.MergeGroup, params domain.SchedulingParams) (*domain.ScheduleResult, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}

	if len(dataset.Sections) == 0 {
		s.log.Info("empty dataset, returning empty result")
		return domain.NewScheduleResult(), nil
	}

	unscheduled, reports, err := merge.ValidateAll(merges, dataset)
	if err != nil {
		return nil, err
	}
	for _, r := range reports {
		if !r.IsValid {
			s.log.Info("merge group unschedulable",
				zap.String("group", r.GroupID),
				zap.Int("total_enrollment", r.TotalEnrollment),
				zap.Int("max_room_capacity", r.MaxRoomCapacity),
			)
		}
	}

	g, err := graph.Build(dataset, merges)
	if err != nil {
		return nil, err
	}
	s.log.Info("conflict graph built", zap.Int("vertices", len(g.Vertices())), zap.Int("edges", len(g.Edges())))

	colors, err := coloring.Color(g, merges)
	if err != nil {
		return nil, err
	}
	s.log.Info("coloring complete", zap.Int("colors", countDistinctColors(colors)))

	assignments, conflicts, _ := scheduler.Assign(dataset, colors, merges, unscheduled, params)
	s.log.Info("slot assignment complete", zap.Int("assignments", len(assignments)), zap.Int("conflicts", len(conflicts)))

	roomAssignments, valid := rooms.Assign(assignments, dataset, merges, unscheduled)

	result := domain.NewScheduleResult()
	result.Assignments = assignments
	result.Conflicts = conflicts
	result.Colors = colors
	result.RoomAssignments = roomAssignments
	result.AssignmentValid = valid
	result.UnscheduledMerges = unscheduled

	for crn, sec := range dataset.Sections {
		result.CourseSizes[crn] = sec.Enrollment
		result.CourseCodes[crn] = sec.CourseCode
	}
	for _, r := range dataset.Rooms {
		result.RoomCapacities[r.Name] = r.Capacity
	}
	result.InstructorsBySection = dataset.InstructorsBySection

	s.log.Info("room assignment complete", zap.Int("rooms_used", len(roomAssignments)))

	return result, nil
}

func validateParams(p domain.SchedulingParams) error {
	if p.MaxDays < 1 || p.MaxDays > domain.MaxDays {
		return coreerrors.InvalidInputf("max_days_out_of_range", "maxDays must be within [1,%d], got %d", domain.MaxDays, p.MaxDays)
	}
	if p.StudentMaxPerDay <= 0 {
		return coreerrors.InvalidInput("student_max_per_day_invalid", "studentMaxPerDay must be positive")
	}
	if p.InstructorMaxPerDay <= 0 {
		return coreerrors.InvalidInput("instructor_max_per_day_invalid", "instructorMaxPerDay must be positive")
	}
	if p.WLargeLate <= 0 || p.WB2BStudent <= 0 || p.WB2BInstructor <= 0 {
		return coreerrors.InvalidInput("soft_weight_invalid", "soft weights must be positive")
	}
	return nil
}

func countDistinctColors(colors map[string]int) int {
	seen := make(map[int]struct{})
	for _, c := range colors {
		seen[c] = struct{}{}
	}
	return len(seen)
}
