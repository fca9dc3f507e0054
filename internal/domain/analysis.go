package domain

// DoubleBookRecord names a single colliding pair at a slot.
type DoubleBookRecord struct {
	EntityID string
	Day      int
	Block    int
	CrnA     string
	CrnB     string
}

// OverCapRecord lists every crn an entity has on a day whose count exceeds
// the cap.
type OverCapRecord struct {
	EntityID string
	Day      int
	Crns     []string
}

// BackToBackRecord lists the sorted consecutive blocks an entity holds on
// one day.
type BackToBackRecord struct {
	EntityID string
	Day      int
	Blocks   []int
}

// LargeCourseLateRecord names one large section assigned outside the
// early-week window.
type LargeCourseLateRecord struct {
	Crn string
	Day int
}

// ScheduleAnalysis is the post-hoc, independently recomputed view of a
// ScheduleResult. It is the authoritative source of violation counts.
type ScheduleAnalysis struct {
	StudentDoubleBook    []DoubleBookRecord
	InstructorDoubleBook []DoubleBookRecord
	StudentGtMaxPerDay   []OverCapRecord
	InstructorGtMaxPerDay []OverCapRecord

	BackToBackStudents    []BackToBackRecord
	BackToBackInstructors []BackToBackRecord
	LargeCoursesNotEarly  []LargeCourseLateRecord

	NumClasses    int
	NumStudents   int
	NumRooms      int
	SlotsUsed     int
	UnplacedExams int
}
