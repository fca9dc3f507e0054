package domain

// Section is a single course offering that gets one exam slot. Crn is its
// opaque identifier; unique within a SchedulingDataset.
type Section struct {
	Crn         string
	CourseCode  string
	Enrollment  int
	Instructors []string
	Department  string
	ExamTerm    string
}

// Student enumerates the sections one student is enrolled in.
type Student struct {
	StudentID       string
	EnrolledSection []string
}

// Room is a bookable exam venue with a fixed seat count.
type Room struct {
	Name     string
	Capacity int
}

// MergeGroup forces every listed crn to share one slot and one room.
type MergeGroup struct {
	ID      string
	Members []string
}

// Slot is the (day, block) pair identifying one cell of the candidate grid.
type Slot struct {
	Day   int
	Block int
}
