// Package export renders a ScheduleResult and ScheduleAnalysis to JSON or
// an aligned text table for a CLI host, grouped by day and block.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"

	"examsched/internal/domain"
)

// ScheduleExport is the JSON envelope returned to a caller.
type ScheduleExport struct {
	RunID       string        `json:"run_id"`
	GeneratedAt string        `json:"generated_at"`
	Summary     ExportSummary `json:"summary"`
	Schedule    []DaySchedule `json:"schedule"`
	Unscheduled []string      `json:"unscheduled_merges"`
}

// ExportSummary carries the headline counts also found in ScheduleAnalysis.
type ExportSummary struct {
	TotalSections int `json:"total_sections"`
	TotalRooms    int `json:"total_rooms"`
	SlotsUsed     int `json:"slots_used"`
	HardConflicts int `json:"hard_conflicts"`
	UnplacedExams int `json:"unplaced_exams"`
}

// DaySchedule groups block slots under one named day.
type DaySchedule struct {
	Day    string      `json:"day"`
	Blocks []BlockSlot `json:"blocks"`
}

// BlockSlot groups section exports under one labeled block.
type BlockSlot struct {
	Block      int             `json:"block"`
	Time       string          `json:"time"`
	Activities []SectionExport `json:"activities"`
}

// SectionExport is one scheduled section's public-facing record.
type SectionExport struct {
	Crn        string `json:"crn"`
	CourseCode string `json:"course_code"`
	Room       string `json:"room"`
	Valid      bool   `json:"valid"`
	Enrollment int    `json:"enrollment"`
}

// ToScheduleExport assembles the JSON envelope from a final result and its
// analysis. runID and generatedAt are stamped by the caller (typically the
// CLI host, after the pure core call returns) so the core itself stays
// free of clock and randomness dependencies.
func ToScheduleExport(result *domain.ScheduleResult, analysis domain.ScheduleAnalysis, params domain.SchedulingParams, runID string, generatedAt time.Time) ScheduleExport {
	if runID == "" {
		runID = uuid.NewString()
	}

	byDayBlock := make(map[domain.Slot][]SectionExport)
	for crn, slot := range result.Assignments {
		byDayBlock[slot] = append(byDayBlock[slot], SectionExport{
			Crn:        crn,
			CourseCode: result.CourseCodes[crn],
			Room:       result.RoomAssignments[crn],
			Valid:      result.AssignmentValid[crn],
			Enrollment: result.CourseSizes[crn],
		})
	}

	var days []DaySchedule
	for d := 0; d < params.MaxDays; d++ {
		var blocks []BlockSlot
		for b := 0; b < domain.BlocksPerDay; b++ {
			acts := byDayBlock[domain.Slot{Day: d, Block: b}]
			sort.Slice(acts, func(i, j int) bool { return acts[i].Crn < acts[j].Crn })
			blocks = append(blocks, BlockSlot{Block: b, Time: domain.BlockLabel(b), Activities: acts})
		}
		days = append(days, DaySchedule{Day: domain.DayName(d), Blocks: blocks})
	}

	unscheduled := make([]string, 0, len(result.UnscheduledMerges))
	for id := range result.UnscheduledMerges {
		unscheduled = append(unscheduled, id)
	}
	sort.Strings(unscheduled)

	return ScheduleExport{
		RunID:       runID,
		GeneratedAt: generatedAt.Format(time.RFC3339),
		Summary: ExportSummary{
			TotalSections: len(result.Assignments),
			TotalRooms:    analysis.NumRooms,
			SlotsUsed:     analysis.SlotsUsed,
			HardConflicts: len(result.Conflicts),
			UnplacedExams: analysis.UnplacedExams,
		},
		Schedule:    days,
		Unscheduled: unscheduled,
	}
}

// WriteJSON encodes exp to w as indented JSON.
func WriteJSON(w io.Writer, exp ScheduleExport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(exp)
}

// WriteTable renders exp as an aligned, tab-separated table for terminal
// output.
func WriteTable(w io.Writer, exp ScheduleExport) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DAY\tBLOCK\tTIME\tCRN\tCOURSE\tROOM\tVALID")
	for _, d := range exp.Schedule {
		for _, b := range d.Blocks {
			for _, a := range b.Activities {
				fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\t%t\n", d.Day, b.Block, b.Time, a.Crn, a.CourseCode, a.Room, a.Valid)
			}
		}
	}
	return tw.Flush()
}
