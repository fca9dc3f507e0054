package domain

// ConflictKind enumerates the four hard-constraint violation kinds the
// core detects. These are the only kinds the core recognizes.
type ConflictKind string

const (
	ConflictStudentDoubleBook     ConflictKind = "student_double_book"
	ConflictStudentGtMaxPerDay    ConflictKind = "student_gt_max_per_day"
	ConflictInstructorDoubleBook  ConflictKind = "instructor_double_book"
	ConflictInstructorGtMaxPerDay ConflictKind = "instructor_gt_max_per_day"
)

// Conflict is one hard-constraint violation record.
type Conflict struct {
	Kind           ConflictKind
	EntityID       string
	Crn            string
	ConflictingCrn string // optional; empty when not applicable
	Day            int
	Block          int
}

// ScheduleResult is the sole output of one scheduling call.
type ScheduleResult struct {
	Assignments       map[string]Slot
	RoomAssignments   map[string]string
	AssignmentValid   map[string]bool // false on over-capacity room fallback
	Conflicts         []Conflict
	Colors            map[string]int
	UnscheduledMerges map[string]struct{}

	// Metadata consumed by the analyzer and downstream formatters.
	CourseSizes          map[string]int
	CourseCodes          map[string]string
	RoomCapacities       map[string]int
	InstructorsBySection map[string]map[string]struct{}
}

// NewScheduleResult allocates an empty result ready for incremental fill.
func NewScheduleResult() *ScheduleResult {
	return &ScheduleResult{
		Assignments:          make(map[string]Slot),
		RoomAssignments:      make(map[string]string),
		AssignmentValid:      make(map[string]bool),
		Conflicts:            nil,
		Colors:               make(map[string]int),
		UnscheduledMerges:    make(map[string]struct{}),
		CourseSizes:          make(map[string]int),
		CourseCodes:          make(map[string]string),
		RoomCapacities:       make(map[string]int),
		InstructorsBySection: make(map[string]map[string]struct{}),
	}
}
