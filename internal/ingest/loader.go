// Package ingest decodes a fixed-shape JSON dataset file into the core's
// domain types. It performs no column-alias detection or schema sniffing —
// that belongs to an out-of-scope ingest layer; this is the minimum glue
// needed to drive the core from a file on disk.
package ingest

import (
	"encoding/json"
	"os"

	"examsched/internal/coreerrors"
	"examsched/internal/domain"
)

// fileSection mirrors domain.Section for JSON decode.
type fileSection struct {
	Crn         string   `json:"crn"`
	CourseCode  string   `json:"courseCode"`
	Enrollment  int      `json:"enrollment"`
	Instructors []string `json:"instructors"`
	Department  string   `json:"department"`
	ExamTerm    string   `json:"examTerm"`
}

type fileStudent struct {
	StudentID        string   `json:"studentId"`
	EnrolledSections []string `json:"enrolledSections"`
}

type fileRoom struct {
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

type fileMergeGroup struct {
	ID      string   `json:"id"`
	Members []string `json:"members"`
}

type fileEnvelope struct {
	Sections []fileSection    `json:"sections"`
	Students []fileStudent    `json:"students"`
	Rooms    []fileRoom       `json:"rooms"`
	Merges   []fileMergeGroup `json:"merges"`
}

// LoadDataset decodes the JSON file at path into a SchedulingDataset and a
// merge-group map. Sections with zero enrollment are dropped here, per
// invariant 5, since the fixed envelope has no other stage to do it.
func LoadDataset(path string) (*domain.SchedulingDataset, map[string]domain.MergeGroup, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, coreerrors.InvalidInputf("dataset_unreadable", "cannot open dataset file: %v", err)
	}
	defer f.Close()

	var env fileEnvelope
	if err := json.NewDecoder(f).Decode(&env); err != nil {
		return nil, nil, coreerrors.InvalidInputf("dataset_malformed", "cannot decode dataset JSON: %v", err)
	}

	sections := make(map[string]domain.Section, len(env.Sections))
	for _, s := range env.Sections {
		if s.Enrollment <= 0 {
			continue
		}
		sections[s.Crn] = domain.Section{
			Crn:         s.Crn,
			CourseCode:  s.CourseCode,
			Enrollment:  s.Enrollment,
			Instructors: s.Instructors,
			Department:  s.Department,
			ExamTerm:    s.ExamTerm,
		}
	}

	students := make(map[string]domain.Student, len(env.Students))
	for _, s := range env.Students {
		students[s.StudentID] = domain.Student{
			StudentID:       s.StudentID,
			EnrolledSection: s.EnrolledSections,
		}
	}

	rooms := make([]domain.Room, 0, len(env.Rooms))
	for _, r := range env.Rooms {
		rooms = append(rooms, domain.Room{Name: r.Name, Capacity: r.Capacity})
	}

	merges := make(map[string]domain.MergeGroup, len(env.Merges))
	for _, m := range env.Merges {
		merges[m.ID] = domain.MergeGroup{ID: m.ID, Members: m.Members}
	}

	dataset := domain.NewSchedulingDataset(sections, students, rooms)
	return dataset, merges, nil
}
